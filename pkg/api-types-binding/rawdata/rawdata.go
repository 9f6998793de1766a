package rawdata

import (
	"github.com/opst/leadline/pkg/api/types/rawdata"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func Compose(r domain.RawData) rawdata.RawData {
	payload := r.Payload
	if payload == nil {
		payload = map[string]string{}
	}
	return rawdata.RawData{
		Id:           r.Id,
		Source:       r.Source,
		Payload:      payload,
		SubmittedBy:  r.SubmittedBy,
		ReviewStatus: string(r.ReviewStatus),
		LeadId:       r.LeadId,
		CreatedAt:    rfctime.RFC3339(r.CreatedAt),
	}
}
