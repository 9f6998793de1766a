package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/opst/leadline/cmd/loops/hook"
	"github.com/opst/leadline/cmd/loops/recurring"
	"github.com/opst/leadline/cmd/loops/tasks/expire"
	"github.com/opst/leadline/cmd/loops/tasks/notify"
	"github.com/opst/leadline/pkg/api/types/requests"
	"github.com/opst/leadline/pkg/domain"
	kdb "github.com/opst/leadline/pkg/domain/leadline/db"
	"github.com/opst/leadline/pkg/loop"
)

func withPrefix(l *log.Logger, prefix string) *log.Logger {
	return log.New(l.Writer(), prefix, l.Flags()|log.Lmicroseconds)
}

// monitor logs each run of the task.
func monitor[T any](logger *log.Logger, task loop.Task[T]) loop.Task[T] {
	var counter uint64
	return func(ctx context.Context, t T) (ret T, next loop.Next) {
		counter += 1
		begin := time.Now()
		logger.Printf("task start: #0x%X", counter)
		defer func() {
			logger.Printf(
				"task end: #0x%X (takes %s): %s with value = %+v",
				counter, time.Since(begin), next, ret,
			)
		}()
		return task(ctx, t)
	}
}

// LoopManifest tells how a loop behaves.
type LoopManifest struct {
	Type   domain.LoopType
	Policy recurring.Policy

	// Hook is notified of appointment events. Used by the notify loop.
	Hook hook.Hook[requests.Event]
}

func StartLoop(ctx context.Context, logger *log.Logger, db kdb.Database, manifest LoopManifest) error {
	switch manifest.Type {
	case domain.Expire:
		l := withPrefix(logger, "[expire loop] ")
		_, err := loop.Start(
			ctx, expire.Seed(),
			monitor(l, expire.Task(l, db.Request(), time.Now).Applied(manifest.Policy)),
			loop.WithTimeout(30*time.Second),
		)
		return err
	case domain.Notify:
		l := withPrefix(logger, "[notify loop] ")
		_, err := loop.Start(
			ctx, notify.Seed(),
			monitor(l, notify.Task(l, db.Request(), manifest.Hook).Applied(manifest.Policy)),
			loop.WithTimeout(time.Minute),
		)
		return err
	}
	return fmt.Errorf("%w: %s", domain.ErrUnknownLoopType, manifest.Type)
}
