package sqldb

import "usermgmt/pkg/domain"

// SQLUser is the row shape of the users table.
type SQLUser struct {
	ID     int64  `db:"id"     goqu:"skipinsert"`
	Email  string `db:"email"`
	Name   string `db:"name"`
	Status string `db:"status"`
	Age    int    `db:"age"`
}

func (u *SQLUser) ToDomain() *domain.User {
	return &domain.User{
		ID:     domain.UserID(u.ID),
		Email:  u.Email,
		Name:   u.Name,
		Age:    u.Age,
		Status: domain.UserStatus(u.Status),
	}
}

func (u *SQLUser) FromDomain(user domain.User) {
	*u = SQLUser{
		ID:     int64(user.ID),
		Email:  user.Email,
		Name:   user.Name,
		Status: string(user.Status),
		Age:    user.Age,
	}
}
