package notify

import (
	"context"
	"errors"
	"log"

	"github.com/opst/leadline/cmd/loops/hook"
	"github.com/opst/leadline/cmd/loops/recurring"
	bindrequests "github.com/opst/leadline/pkg/api-types-binding/requests"
	"github.com/opst/leadline/pkg/api/types/requests"
	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/appointmentrequest/db"
)

type Stats struct {
	Delivered int
	Failed    int
}

func Seed() Stats {
	return Stats{}
}

// Task delivers the oldest undelivered appointment event to the hook.
//
// When the hook fails, the event stays undelivered and the task reports not updated,
// so it is tried again after cooldown.
func Task(logger *log.Logger, db kdb.Interface, h hook.Hook[requests.Event]) recurring.Task[Stats] {
	return func(ctx context.Context, s Stats) (Stats, bool, error) {
		popped, err := db.PopEvent(ctx, func(ev domain.AppointmentEvent) error {
			return h.After(ctx, bindrequests.ComposeEvent(ev))
		})
		if errors.Is(err, hook.ErrHookFailed) {
			s.Failed += 1
			logger.Printf("event is not delivered: %v", err)
			return s, false, nil
		}
		if err != nil {
			return s, false, err
		}
		if popped {
			s.Delivered += 1
		}
		return s, popped, nil
	}
}
