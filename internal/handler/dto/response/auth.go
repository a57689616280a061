package response

import "foodshare/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	User        *queries.UserView `json:"user"`
}

type SignupResponse struct {
	UserID string `json:"user_id"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}
