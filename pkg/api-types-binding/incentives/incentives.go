package incentives

import (
	"github.com/opst/leadline/pkg/api/types/incentives"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func Compose(i domain.Incentive) incentives.Incentive {
	return incentives.Incentive{
		Id:          i.Id,
		ProfileId:   i.ProfileId,
		AmountCents: i.AmountCents,
		Reason:      i.Reason,
		Period:      i.Period,
		Status:      string(i.Status),
		CreatedBy:   i.CreatedBy,
		CreatedAt:   rfctime.RFC3339(i.CreatedAt),
		UpdatedAt:   rfctime.RFC3339(i.UpdatedAt),
	}
}

func ComposeSummary(s domain.IncentiveSummary) incentives.Summary {
	return incentives.Summary{ProfileId: s.ProfileId, Totals: Totals(s.Totals)}
}

func Totals(t map[domain.IncentiveStatus]int64) map[string]int64 {
	if t == nil {
		return nil
	}
	ret := make(map[string]int64, len(t))
	for k, v := range t {
		ret[string(k)] = v
	}
	return ret
}
