package domain

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	domerr "github.com/opst/leadline/pkg/domain/errors"
)

type IncentiveStatus string

const (
	IncentivePending  IncentiveStatus = "pending"
	IncentiveApproved IncentiveStatus = "approved"
	IncentivePaid     IncentiveStatus = "paid"
	IncentiveRejected IncentiveStatus = "rejected"
)

var ErrUnknownIncentiveStatus = errors.New("unknown incentive status")

func (s IncentiveStatus) String() string {
	return string(s)
}

func AsIncentiveStatus(s string) (IncentiveStatus, error) {
	switch IncentiveStatus(s) {
	case IncentivePending, IncentiveApproved, IncentivePaid, IncentiveRejected:
		return IncentiveStatus(s), nil
	}
	return "", fmt.Errorf(`%w: "%s"`, ErrUnknownIncentiveStatus, s)
}

func IncentiveStatuses() []IncentiveStatus {
	return []IncentiveStatus{IncentivePending, IncentiveApproved, IncentivePaid, IncentiveRejected}
}

var incentiveTransitions = map[IncentiveStatus][]IncentiveStatus{
	IncentivePending:  {IncentiveApproved, IncentiveRejected},
	IncentiveApproved: {IncentivePaid},
}

func (s IncentiveStatus) CanChangeTo(next IncentiveStatus) bool {
	return slices.Contains(incentiveTransitions[s], next)
}

func NewErrInvalidIncentiveStateChanging(from, to IncentiveStatus) error {
	return fmt.Errorf("%w: incentive %s -> %s", domerr.ErrInvalidStateChanging, from, to)
}

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Period of incentives, like "2024-04".
func AsPeriod(s string) (string, error) {
	if !periodPattern.MatchString(s) {
		return "", fmt.Errorf(`%w: period should be "YYYY-MM": %q`, domerr.ErrInvalidArgument, s)
	}
	return s, nil
}

func PeriodOf(t time.Time) string {
	return t.Format("2006-01")
}

type Incentive struct {
	Id          string
	ProfileId   string
	AmountCents int64
	Reason      string
	Period      string
	Status      IncentiveStatus
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type IncentiveSpec struct {
	ProfileId   string
	AmountCents int64
	Reason      string
	Period      string
	CreatedBy   string
}

func (s IncentiveSpec) Validate() error {
	if s.ProfileId == "" {
		return fmt.Errorf("%w: incentive receiver is not set", domerr.ErrInvalidArgument)
	}
	if s.AmountCents <= 0 {
		return fmt.Errorf("%w: incentive amount should be positive", domerr.ErrInvalidArgument)
	}
	if strings.TrimSpace(s.Reason) == "" {
		return fmt.Errorf("%w: incentive reason is empty", domerr.ErrInvalidArgument)
	}
	if _, err := AsPeriod(s.Period); err != nil {
		return err
	}
	return nil
}

type IncentiveQuery struct {
	ProfileId []string
	Period    []string
	Status    []IncentiveStatus
}

// IncentiveSummary is the total amount of incentives per status.
type IncentiveSummary struct {
	ProfileId string
	Totals    map[IncentiveStatus]int64
}
