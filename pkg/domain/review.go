package domain

import (
	"errors"
	"fmt"
	"time"

	domerr "github.com/opst/leadline/pkg/domain/errors"
)

// EntityType is a kind of entity which can be put in the review queue.
type EntityType string

const (
	EntityLead     EntityType = "lead"
	EntityClient   EntityType = "client"
	EntityRawData  EntityType = "raw_data"
	EntityDocument EntityType = "document"
)

var ErrUnknownEntityType = errors.New("unknown entity type")

func (e EntityType) String() string {
	return string(e)
}

func AsEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityLead, EntityClient, EntityRawData, EntityDocument:
		return EntityType(s), nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrUnknownEntityType, s)
}

func EntityTypes() []EntityType {
	return []EntityType{EntityLead, EntityClient, EntityRawData, EntityDocument}
}

// Table returns the name of the table which holds the entity.
func (e EntityType) Table() string {
	switch e {
	case EntityLead:
		return "leads"
	case EntityClient:
		return "clients"
	case EntityRawData:
		return "raw_data"
	case EntityDocument:
		return "documents"
	}
	return ""
}

type Review struct {
	Id          string
	EntityType  EntityType
	EntityId    string
	SubmittedBy string
	Status      ReviewStatus
	ReviewedBy  *string
	ReviewedAt  *time.Time
	Note        string
	CreatedAt   time.Time
}

type ReviewSpec struct {
	EntityType  EntityType
	EntityId    string
	SubmittedBy string
}

type ReviewQuery struct {
	Status      []ReviewStatus
	EntityType  []EntityType
	SubmittedBy []string
}

// ReviewDecision decides many reviews at once.
type ReviewDecision struct {
	ReviewIds []string

	// ReviewApproved or ReviewRejected.
	Verdict    ReviewStatus
	ReviewedBy string
	Note       string
}

func (d ReviewDecision) Validate() error {
	if len(d.ReviewIds) == 0 {
		return fmt.Errorf("%w: no reviews are specified", domerr.ErrInvalidArgument)
	}
	if d.Verdict != ReviewApproved && d.Verdict != ReviewRejected {
		return fmt.Errorf("%w: verdict should be approved or rejected, not %q", domerr.ErrInvalidArgument, d.Verdict)
	}
	return nil
}

// ReviewOutcome is a review after the decision.
type ReviewOutcome struct {
	Review

	// the lead created from approved raw data.
	CreatedLeadId *string
}

func NewErrReviewNotPending(r Review) error {
	return fmt.Errorf(
		"%w: review %s (%s %s) is already %s",
		domerr.ErrInvalidStateChanging, r.Id, r.EntityType, r.EntityId, r.Status,
	)
}
