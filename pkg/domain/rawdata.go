package domain

import (
	"fmt"
	"strings"
	"time"

	domerr "github.com/opst/leadline/pkg/domain/errors"
	"github.com/opst/leadline/pkg/utils"
)

// RawData is an unstructured lead candidate. Keys of Payload are free,
// but "name", "email", "phone" and "company" are used to make a lead from it.
type RawData struct {
	Id           string
	Source       string
	Payload      map[string]string
	SubmittedBy  string
	ReviewStatus ReviewStatus
	LeadId       *string
	CreatedAt    time.Time
}

// RawDataSpec is raw data to be submitted.
//
// Raw data always starts pending and waits in the review queue, whoever submits it.
// Leads are made from raw data only when its review is approved.
type RawDataSpec struct {
	Source      string
	Payload     map[string]string
	SubmittedBy string
}

func (s RawDataSpec) Validate() error {
	if len(s.Payload) == 0 {
		return fmt.Errorf("%w: raw data is empty", domerr.ErrInvalidArgument)
	}
	if s.SubmittedBy == "" {
		return fmt.Errorf("%w: raw data submitter is unknown", domerr.ErrInvalidArgument)
	}
	return nil
}

// LeadSpec makes the lead which approved raw data turns into.
func (r RawData) LeadSpec(approvedBy string) LeadSpec {
	name := strings.TrimSpace(r.Payload["name"])
	if name == "" {
		name = strings.TrimSpace(r.Payload["company"])
	}
	if name == "" {
		name = "(unnamed) " + r.Id
	}
	notes := utils.Filter(
		utils.Map([]string{"notes", "note", "memo"}, func(k string) string { return strings.TrimSpace(r.Payload[k]) }),
		func(v string) bool { return v != "" },
	)
	return LeadSpec{
		Name:         name,
		Email:        strings.TrimSpace(r.Payload["email"]),
		Phone:        strings.TrimSpace(r.Payload["phone"]),
		Company:      strings.TrimSpace(r.Payload["company"]),
		Source:       LeadSourceRawData,
		Notes:        strings.Join(notes, "\n"),
		CreatedBy:    r.SubmittedBy,
		ReviewStatus: ReviewApproved,
	}
}

type RawDataQuery struct {
	SubmittedBy  []string
	ReviewStatus []ReviewStatus
}
