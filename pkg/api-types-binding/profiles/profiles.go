package profiles

import (
	"github.com/opst/leadline/pkg/api/types/profiles"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func Compose(p domain.Profile) profiles.Profile {
	return profiles.Profile{
		Id:        p.Id,
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      string(p.Role),
		Active:    p.Active,
		CreatedAt: rfctime.RFC3339(p.CreatedAt),
		UpdatedAt: rfctime.RFC3339(p.UpdatedAt),
	}
}
