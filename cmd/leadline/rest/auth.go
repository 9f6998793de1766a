package rest

import (
	"context"
	"net/http"

	apiauth "github.com/opst/leadline/pkg/api/types/auth"
	apiprofiles "github.com/opst/leadline/pkg/api/types/profiles"
)

func (c *client) Login(ctx context.Context, email string, password string) (apiauth.LoginResponse, error) {
	return sendJSON[apiauth.LoginResponse](
		ctx, c, http.MethodPost, c.apipath("auth", "login"),
		apiauth.LoginRequest{Email: email, Password: password},
		MessageFor{Status4xx: "login is rejected"},
	)
}

func (c *client) Me(ctx context.Context) (apiprofiles.Profile, error) {
	return sendJSON[apiprofiles.Profile](
		ctx, c, http.MethodGet, c.apipath("auth", "me"), nil,
		MessageFor{Status4xx: "you are not logged in"},
	)
}
