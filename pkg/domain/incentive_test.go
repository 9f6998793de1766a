package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/opst/leadline/pkg/domain"
	domerr "github.com/opst/leadline/pkg/domain/errors"
)

func TestIncentiveStatus_CanChangeTo(t *testing.T) {
	for name, testcase := range map[string]struct {
		from, to domain.IncentiveStatus
		then     bool
	}{
		"pending -> approved":  {domain.IncentivePending, domain.IncentiveApproved, true},
		"pending -> rejected":  {domain.IncentivePending, domain.IncentiveRejected, true},
		"pending -> paid":      {domain.IncentivePending, domain.IncentivePaid, false},
		"approved -> paid":     {domain.IncentiveApproved, domain.IncentivePaid, true},
		"approved -> rejected": {domain.IncentiveApproved, domain.IncentiveRejected, false},
		"paid -> pending":      {domain.IncentivePaid, domain.IncentivePending, false},
		"rejected -> approved": {domain.IncentiveRejected, domain.IncentiveApproved, false},
	} {
		t.Run(name, func(t *testing.T) {
			if got := testcase.from.CanChangeTo(testcase.to); got != testcase.then {
				t.Errorf("got %v", got)
			}
		})
	}
}

func TestIncentiveSpec_Validate(t *testing.T) {
	valid := domain.IncentiveSpec{
		ProfileId: "p1", AmountCents: 1000, Reason: "closed Acme", Period: "2024-04",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for name, mutate := range map[string]func(*domain.IncentiveSpec){
		"zero amount":  func(s *domain.IncentiveSpec) { s.AmountCents = 0 },
		"no reason":    func(s *domain.IncentiveSpec) { s.Reason = "" },
		"bad period":   func(s *domain.IncentiveSpec) { s.Period = "2024-13" },
		"short period": func(s *domain.IncentiveSpec) { s.Period = "2024-4" },
		"no receiver":  func(s *domain.IncentiveSpec) { s.ProfileId = "" },
	} {
		t.Run(name, func(t *testing.T) {
			s := valid
			mutate(&s)
			if err := s.Validate(); !errors.Is(err, domerr.ErrInvalidArgument) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}

	if got := domain.PeriodOf(time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)); got != "2024-04" {
		t.Errorf("PeriodOf: %s", got)
	}
}
