package reviews

import (
	"github.com/opst/leadline/pkg/api/types/reviews"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func Compose(r domain.Review) reviews.Review {
	return reviews.Review{
		Id:          r.Id,
		EntityType:  string(r.EntityType),
		EntityId:    r.EntityId,
		SubmittedBy: r.SubmittedBy,
		Status:      string(r.Status),
		ReviewedBy:  r.ReviewedBy,
		ReviewedAt:  rfctime.Ref(r.ReviewedAt),
		Note:        r.Note,
		CreatedAt:   rfctime.RFC3339(r.CreatedAt),
	}
}

func ComposeOutcome(o domain.ReviewOutcome) reviews.Outcome {
	return reviews.Outcome{
		Review:        Compose(o.Review),
		CreatedLeadId: o.CreatedLeadId,
	}
}
