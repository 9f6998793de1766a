package expire_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/opst/leadline/cmd/loops/tasks/expire"
	"github.com/opst/leadline/pkg/domain/appointmentrequest/db/mock"
)

func TestTask(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	type then struct {
		stats   expire.Stats
		updated bool
		err     error
	}

	fake := errors.New("fake")
	for name, testcase := range map[string]struct {
		when func(context.Context, time.Time) ([]string, error)
		then
	}{
		"when requests are expired, it reports updated": {
			when: func(context.Context, time.Time) ([]string, error) {
				return []string{"req-1", "req-2"}, nil
			},
			then: then{stats: expire.Stats{Expired: 3}, updated: true},
		},
		"when nothing is expired, it reports not updated": {
			when: func(context.Context, time.Time) ([]string, error) {
				return nil, nil
			},
			then: then{stats: expire.Stats{Expired: 1}},
		},
		"when database fails, it returns the error": {
			when: func(context.Context, time.Time) ([]string, error) {
				return nil, fake
			},
			then: then{stats: expire.Stats{Expired: 1}, err: fake},
		},
	} {
		t.Run(name, func(t *testing.T) {
			db := mock.NewRequestInterface()
			db.Impl.Expire = testcase.when

			testee := expire.Task(log.New(new(bytes.Buffer), "", 0), db, clock)
			stats, updated, err := testee(context.Background(), expire.Stats{Expired: 1})

			if !errors.Is(err, testcase.then.err) {
				t.Errorf("unexpected error: %v", err)
			}
			if stats != testcase.then.stats || updated != testcase.then.updated {
				t.Errorf(
					"(stats, updated): actual = (%+v, %v), expected = (%+v, %v)",
					stats, updated, testcase.then.stats, testcase.then.updated,
				)
			}
			if len(db.Calls.Expire) != 1 || !db.Calls.Expire[0].Equal(now) {
				t.Errorf("Expire is called with %v, expected [%v]", db.Calls.Expire, now)
			}
		})
	}
}
