package projects

import (
	"fmt"
	"time"

	"github.com/opst/leadline/pkg/api/types/projects"
	"github.com/opst/leadline/pkg/domain"
	domerr "github.com/opst/leadline/pkg/domain/errors"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func date(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(projects.DateFormat)
}

func Compose(p domain.Project) projects.Project {
	return projects.Project{
		Id:          p.Id,
		ClientId:    p.ClientId,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		ValueCents:  p.ValueCents,
		StartDate:   date(p.StartDate),
		EndDate:     date(p.EndDate),
		Owner:       p.Owner,
		CreatedAt:   rfctime.RFC3339(p.CreatedAt),
		UpdatedAt:   rfctime.RFC3339(p.UpdatedAt),
	}
}

// ParseDate parses "YYYY-MM-DD". Empty string is nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(projects.DateFormat, s)
	if err != nil {
		return nil, fmt.Errorf("%w: date should be YYYY-MM-DD: %q", domerr.ErrInvalidArgument, s)
	}
	return &t, nil
}
