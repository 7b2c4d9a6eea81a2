// Package users is the domain service of the user management API. It applies
// business rules on top of the repository and decides which failures reach
// callers as domain errors and which become generic application errors.
package users

import (
	"context"
	"errors"

	"usermgmt/internal/config"
	"usermgmt/internal/repository"
	"usermgmt/pkg/domain"
	"usermgmt/pkg/logger"
	"usermgmt/pkg/metrics"
	"usermgmt/pkg/serrors"

	"go.uber.org/zap"
)

// domainKinds pass through the service unchanged.
var domainKinds = []serrors.Kind{ //nolint: gochecknoglobals
	domain.ErrInvalidAge,
	domain.ErrInvalidUserName,
	domain.ErrDuplicateEmail,
	domain.ErrUserNotFound,
	serrors.ErrBadRequest,
}

// Options configure the business rules of the service.
type Options struct {
	// MinAge is the youngest age accepted by ValidateAge.
	MinAge int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MinAge: cfg.Users.MinAge}
}

type service struct {
	options    Options
	repository repository.Repository
}

// New creates a Service on top of the given repository. A non-positive MinAge
// falls back to domain.DefaultMinAge.
func New(repository repository.Repository, options Options) Service {
	if options.MinAge <= 0 {
		options.MinAge = domain.DefaultMinAge
	}

	return &service{
		options:    options,
		repository: repository,
	}
}

// Create registers a new user. An empty status defaults to active. Validation
// and duplicate email errors are returned as is.
func (s *service) Create(
	ctx context.Context,
	email, name string,
	age int,
	status domain.UserStatus) (*domain.User, error) {
	user, err := s.create(ctx, email, name, age, status)
	observe(ctx, "create", err)

	return user, err
}

func (s *service) create(
	ctx context.Context,
	email, name string,
	age int,
	status domain.UserStatus) (*domain.User, error) {
	if status == "" {
		status = domain.UserStatusActive
	}
	if !status.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown user status %q", status)
	}
	// age and name are reported before anything about the email.
	if err := s.ValidateAge(age); err != nil {
		return nil, err
	}
	if err := s.ValidateName(name); err != nil {
		return nil, err
	}

	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid email")
	}

	user, err := s.repository.Save(ctx, domain.User{
		Email:  normalized,
		Name:   name,
		Age:    age,
		Status: status,
	})
	if err != nil {
		return nil, translate(err, "could not create user")
	}

	return user, nil
}

// GetByID returns the user with the given id.
func (s *service) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.repository.FindByID(ctx, id)
	if err != nil {
		err = translate(err, "could not get user")
	}
	observe(ctx, "get_by_id", err)

	return user, err
}

// GetByEmail returns the user registered with the given email.
func (s *service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.repository.GetByEmail(ctx, lookupEmail(email))
	if err != nil {
		err = translate(err, "could not get user by email")
	}
	observe(ctx, "get_by_email", err)

	return user, err
}

// EmailExists reports whether the email is already registered.
func (s *service) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := s.repository.EmailExists(ctx, lookupEmail(email))
	if err != nil {
		err = translate(err, "could not check email")
	}
	observe(ctx, "email_exists", err)

	return exists, err
}

// UpdateStatus persists a new status for the user.
func (s *service) UpdateStatus(ctx context.Context, id domain.UserID, status domain.UserStatus) (*domain.User, error) {
	var (
		user *domain.User
		err  error
	)
	if !status.Valid() {
		err = serrors.With(serrors.ErrBadRequest, "unknown user status %q", status)
	} else if user, err = s.repository.UpdateStatus(ctx, id, status); err != nil {
		err = translate(err, "could not update user status")
	}
	observe(ctx, "update_status", err)

	return user, err
}

func (s *service) ValidateAge(age int) error {
	return domain.ValidateAge(age, s.options.MinAge)
}

func (s *service) ValidateName(name string) error {
	return domain.ValidateName(name)
}

// translate keeps domain errors intact and wraps everything else into a
// generic application error carrying the original message.
func translate(err error, msg string) error {
	if serrors.IsAny(err, domainKinds...) {
		return err
	}

	return serrors.Wrap(serrors.ErrInternal, err, "%s", msg)
}

// lookupEmail normalizes an email for lookups. Input that is not an address
// is used as given, so it simply matches nothing.
func lookupEmail(email string) string {
	if normalized, err := NormalizeEmail(email); err == nil {
		return normalized
	}

	return email
}

func observe(ctx context.Context, operation string, err error) {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, serrors.ErrInternal):
		outcome = metrics.OutcomeError
		logger.Error(ctx, "user operation failed", zap.String("operation", operation), zap.Error(err))
	default:
		outcome = metrics.OutcomeRejected
	}
	metrics.UserOperations.WithLabelValues(operation, outcome).Inc()
}
