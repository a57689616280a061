//go:build unit || e2e

package builder

import (
	reqdto "foodshare/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email       string
	Password    string
	DisplayName string
	Location    string
	Role        string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:       "test@example.com",
		Password:    "password123",
		DisplayName: "Test User",
		Location:    "Downtown",
		Role:        "both",
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:       a.Email,
		Password:    a.Password,
		DisplayName: a.DisplayName,
		Location:    a.Location,
		Role:        a.Role,
	}
}
