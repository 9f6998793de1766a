package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/opst/leadline/cmd/leadline/config/profiles"
	krest "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/youta-t/flarc"
)

// TaskWithCommonFlag is a body of subcommands which handles the profile by itself.
type TaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task TaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		rest := make([]any, 0, len(pos))
		for _, p := range pos {
			if v, ok := p.(CommonFlags); ok {
				found = true
				commonFlag = v
				continue
			}
			rest = append(rest, p)
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		logger := log.New(cl.Stderr(), fmt.Sprintf("[%s] ", cl.Fullname()), log.LstdFlags)
		return task(ctx, logger, commonFlag, cl, rest)
	}
}

// Task is a body of subcommands talking to the API as the logged-in user.
type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	client krest.Client,
	cl flarc.Commandline[T],
	params []any,
) error

// NewTask makes flarc.Task which builds a client from the profile and runs the task with it.
func NewTask[T any](task Task[T]) flarc.Task[T] {
	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		client, err := Client(commonFlag, time.Now())
		if err != nil {
			return err
		}
		return task(ctx, logger, client, cl, params)
	})
}

// Client builds a client of the logged-in profile.
func Client(commonFlag CommonFlags, now time.Time) (krest.Client, error) {
	store, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileStoreNotFound) {
			return nil, fmt.Errorf(
				"%w. Please try `leadline login` first",
				err,
			)
		}
		return nil, fmt.Errorf("%w: failed to load profile store (%s)", err, commonFlag.ProfileStore)
	}

	prof, ok := store[commonFlag.Profile]
	if !ok {
		return nil, fmt.Errorf(
			"profile '%s' is not found in %s. Please try `leadline login --profile %s` first",
			commonFlag.Profile, commonFlag.ProfileStore, commonFlag.Profile,
		)
	}
	if !prof.LoggedIn(now) {
		return nil, fmt.Errorf(
			"login of profile '%s' is expired. Please try `leadline login` again",
			commonFlag.Profile,
		)
	}

	client, err := krest.NewClient(prof)
	if err != nil {
		return nil, fmt.Errorf(
			"%w: profile '%s' in %s can be broken. Remove it and try `leadline login` again",
			err, commonFlag.Profile, commonFlag.ProfileStore,
		)
	}
	return client, nil
}
