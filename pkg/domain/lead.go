package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	domerr "github.com/opst/leadline/pkg/domain/errors"
)

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadQualified LeadStatus = "qualified"

	// the lead has become a client. terminal.
	LeadConverted LeadStatus = "converted"

	// the lead has gone. terminal.
	LeadLost LeadStatus = "lost"
)

var ErrUnknownLeadStatus = errors.New("unknown lead status")

func (s LeadStatus) String() string {
	return string(s)
}

func AsLeadStatus(s string) (LeadStatus, error) {
	switch LeadStatus(s) {
	case LeadNew, LeadContacted, LeadQualified, LeadConverted, LeadLost:
		return LeadStatus(s), nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrUnknownLeadStatus, s)
}

func LeadStatuses() []LeadStatus {
	return []LeadStatus{LeadNew, LeadContacted, LeadQualified, LeadConverted, LeadLost}
}

func (s LeadStatus) Terminal() bool {
	return s == LeadConverted || s == LeadLost
}

var leadTransitions = map[LeadStatus][]LeadStatus{
	LeadNew:       {LeadContacted, LeadLost},
	LeadContacted: {LeadQualified, LeadLost},
	LeadQualified: {LeadContacted, LeadConverted, LeadLost},
}

// CanChangeTo tells whether a lead in s can be moved to next.
func (s LeadStatus) CanChangeTo(next LeadStatus) bool {
	return slices.Contains(leadTransitions[s], next)
}

// LeadSourceRawData is the source of leads created from approved raw data.
const LeadSourceRawData = "raw_data"

type Lead struct {
	Id           string
	Name         string
	Email        string
	Phone        string
	Company      string
	Source       string
	Status       LeadStatus
	Notes        string
	AssignedTo   *string
	CreatedBy    string
	ReviewStatus ReviewStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LeadSpec struct {
	Name       string
	Email      string
	Phone      string
	Company    string
	Source     string
	Notes      string
	AssignedTo *string
	CreatedBy  string

	// decided by the role of the creator. see InitialReviewStatus.
	ReviewStatus ReviewStatus
}

func (s LeadSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: lead name is empty", domerr.ErrInvalidArgument)
	}
	if s.CreatedBy == "" {
		return fmt.Errorf("%w: lead creator is unknown", domerr.ErrInvalidArgument)
	}
	return nil
}

// LeadChange is a partial update of contact fields. nil fields are kept.
type LeadChange struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Source  *string
	Notes   *string
}

type LeadQuery struct {
	Status       []LeadStatus
	ReviewStatus []ReviewStatus
	AssignedTo   []string
	CreatedBy    []string
	UpdatedSince *time.Time
	UpdatedUntil *time.Time

	// when set, leads assigned to or created by the profile are returned.
	VisibleTo *string
}

func NewErrInvalidLeadStateChanging(from, to LeadStatus) error {
	return fmt.Errorf("%w: lead %s -> %s", domerr.ErrInvalidStateChanging, from, to)
}
