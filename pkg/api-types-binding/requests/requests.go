package requests

import (
	"github.com/opst/leadline/pkg/api/types/requests"
	"github.com/opst/leadline/pkg/domain"
	"github.com/opst/leadline/pkg/utils/rfctime"
)

func Compose(r domain.AppointmentRequest) requests.Request {
	return requests.Request{
		Id:             r.Id,
		ClientId:       r.ClientId,
		RequestedBy:    r.RequestedBy,
		RequestedStart: rfctime.RFC3339(r.RequestedStart),
		RequestedEnd:   rfctime.RFC3339(r.RequestedEnd),
		Purpose:        r.Purpose,
		Status:         string(r.Status),
		DecidedBy:      r.DecidedBy,
		DecidedAt:      rfctime.Ref(r.DecidedAt),
		DecisionNote:   r.DecisionNote,
		CreatedAt:      rfctime.RFC3339(r.CreatedAt),
		UpdatedAt:      rfctime.RFC3339(r.UpdatedAt),
	}
}

func ComposeClientAppointment(ca domain.ClientAppointment) requests.ClientAppointment {
	return requests.ClientAppointment{
		Id:        ca.Id,
		RequestId: ca.RequestId,
		ClientId:  ca.ClientId,
		Host:      ca.Host,
		StartsAt:  rfctime.RFC3339(ca.StartsAt),
		EndsAt:    rfctime.RFC3339(ca.EndsAt),
		Purpose:   ca.Purpose,
		CreatedAt: rfctime.RFC3339(ca.CreatedAt),
	}
}

func ComposeEvent(ev domain.AppointmentEvent) requests.Event {
	ret := requests.Event{
		Id:        ev.Id,
		Type:      string(ev.Type),
		Actor:     ev.Actor,
		Request:   Compose(ev.Request),
		CreatedAt: rfctime.RFC3339(ev.CreatedAt),
	}
	if ev.ClientAppointment != nil {
		ca := ComposeClientAppointment(*ev.ClientAppointment)
		ret.ClientAppointment = &ca
	}
	return ret
}
