// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

import (
	"time"

	"garden_backend/internal/feature/auth/domain/entity"
	"garden_backend/internal/feature/auth/usecase"
)

// RegistrationReq is the body of POST /registration.
// Gardener defaults to true when omitted.
type RegistrationReq struct {
	Username  string `json:"username" form:"username" binding:"required,max=150"`
	Password  string `json:"password" form:"password" binding:"required,min=6,max=256"`
	Password2 string `json:"password2" form:"password2" binding:"required,eqfield=Password"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Gardener  *bool  `json:"gardener" form:"gardener"`
}

func (r RegistrationReq) ToRegistration() usecase.Registration {
	gardener := true
	if r.Gardener != nil {
		gardener = *r.Gardener
	}
	return usecase.Registration{
		Username:  r.Username,
		Password:  r.Password,
		Password2: r.Password2,
		Email:     r.Email,
		Gardener:  gardener,
	}
}

// UserRes is the public view of a user. The password hash is never included.
type UserRes struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Gardener  bool      `json:"gardener"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserRes(u *entity.User) UserRes {
	return UserRes{ID: u.ID, Username: u.Username, Email: u.Email, Gardener: u.Gardener, CreatedAt: u.CreatedAt}
}

// RegistrationRes wraps the created user.
type RegistrationRes struct {
	User UserRes `json:"user"`
}
