package domain

import (
	"fmt"
	"strings"
	"time"

	domerr "github.com/opst/leadline/pkg/domain/errors"
)

type Client struct {
	Id           string
	LeadId       *string
	Name         string
	Email        string
	Phone        string
	Company      string
	Owner        string
	ReviewStatus ReviewStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ClientSpec struct {
	LeadId       *string
	Name         string
	Email        string
	Phone        string
	Company      string
	Owner        string
	ReviewStatus ReviewStatus
}

func (s ClientSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: client name is empty", domerr.ErrInvalidArgument)
	}
	if s.Owner == "" {
		return fmt.Errorf("%w: client owner is unknown", domerr.ErrInvalidArgument)
	}
	return nil
}

// ClientFromLead makes the spec of the client which a lead is converted into.
func ClientFromLead(l Lead, owner string) ClientSpec {
	return ClientSpec{
		LeadId:       &l.Id,
		Name:         l.Name,
		Email:        l.Email,
		Phone:        l.Phone,
		Company:      l.Company,
		Owner:        owner,
		ReviewStatus: ReviewApproved,
	}
}

type ClientChange struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Owner   *string
}

type ClientQuery struct {
	Owner        []string
	ReviewStatus []ReviewStatus
}
