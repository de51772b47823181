package request

import (
	"lendit/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterRequest) ToDomain() (user.Name, user.Email, user.Password, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return user.Name{}, user.Email{}, user.Password{}, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Name{}, user.Email{}, user.Password{}, err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Name{}, user.Email{}, user.Password{}, err
	}
	return name, email, pass, nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
