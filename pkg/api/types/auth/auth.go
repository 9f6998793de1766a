package auth

import (
	"github.com/opst/leadline/pkg/api/types/profiles"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt rfctime.RFC3339  `json:"expiresAt"`
	Profile   profiles.Profile `json:"profile"`
}
