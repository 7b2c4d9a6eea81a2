package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"usermgmt/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrBadRequest, "user %d is invalid", 42)
	require.Equal(t, "user 42 is invalid", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "could not create user")
	require.Equal(t, "could not create user: db down", e2.Error())

	e3 := serrors.Wrap(serrors.ErrInternal, base, "")
	require.Equal(t, "db down", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "reading")

	require.ErrorIs(t, e, serrors.ErrBadRequest)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrInternal)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrBadRequest, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrBadRequest, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrBadRequest, base, "bad payload")
	require.Equal(t, serrors.ErrBadRequest, e.Kind())
	require.Equal(t, "bad payload", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestKindOf(t *testing.T) {
	custom := serrors.NewKind("CUSTOM")

	require.Equal(t, custom, serrors.KindOf(serrors.With(custom, "x")))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(serrors.ErrInternal))
	require.Equal(t, custom, serrors.KindOf(fmt.Errorf("outer: %w", serrors.With(custom, "x"))))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}

func TestIsAny(t *testing.T) {
	custom := serrors.NewKind("CUSTOM")
	err := fmt.Errorf("save: %w", serrors.With(custom, "taken"))

	require.True(t, serrors.IsAny(err, serrors.ErrBadRequest, custom))
	require.False(t, serrors.IsAny(err, serrors.ErrBadRequest, serrors.ErrInternal))
	require.False(t, serrors.IsAny(err))
}
