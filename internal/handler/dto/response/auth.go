package response

import "meetup-api/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type RegisterResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
