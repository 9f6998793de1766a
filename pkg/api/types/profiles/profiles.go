package profiles

import "github.com/opst/leadline/pkg/utils/rfctime"

type Profile struct {
	Id        string          `json:"id"`
	Email     string          `json:"email"`
	FullName  string          `json:"fullName"`
	Role      string          `json:"role"`
	Active    bool            `json:"active"`
	CreatedAt rfctime.RFC3339 `json:"createdAt"`
	UpdatedAt rfctime.RFC3339 `json:"updatedAt"`
}

func (p *Profile) Equal(o *Profile) bool {
	if p == nil || o == nil {
		return p == nil && o == nil
	}
	return p.Id == o.Id &&
		p.Email == o.Email &&
		p.FullName == o.FullName &&
		p.Role == o.Role &&
		p.Active == o.Active &&
		p.CreatedAt.Equal(&o.CreatedAt) &&
		p.UpdatedAt.Equal(&o.UpdatedAt)
}

type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// UpdateRequest changes a profile. Absent fields are kept.
type UpdateRequest struct {
	FullName *string `json:"fullName,omitempty"`
	Role     *string `json:"role,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

type PasswordRequest struct {
	Password string `json:"password"`
}
