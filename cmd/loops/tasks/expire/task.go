package expire

import (
	"context"
	"log"
	"time"

	"github.com/opst/leadline/cmd/loops/recurring"
	kdb "github.com/opst/leadline/pkg/domain/appointmentrequest/db"
)

// Stats counts requests expired so far.
type Stats struct {
	Expired int
}

func Seed() Stats {
	return Stats{}
}

// Task cancels pending appointment requests whose start has come.
func Task(logger *log.Logger, db kdb.Interface, now func() time.Time) recurring.Task[Stats] {
	return func(ctx context.Context, s Stats) (Stats, bool, error) {
		ids, err := db.Expire(ctx, now())
		if err != nil {
			return s, false, err
		}
		if len(ids) != 0 {
			logger.Printf("expired %d request(s): %v", len(ids), ids)
		}
		s.Expired += len(ids)
		return s, len(ids) != 0, nil
	}
}
