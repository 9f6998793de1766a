package domain

import (
	"errors"
	"fmt"
)

type LoopType string

const (
	// cancels pending appointment requests whose start has passed.
	Expire LoopType = "expire"

	// delivers appointment events to webhooks.
	Notify LoopType = "notify"
)

var ErrUnknownLoopType = errors.New("unknown loop type")

func (lt LoopType) String() string {
	return string(lt)
}

func AsLoopType(s string) (LoopType, error) {
	switch LoopType(s) {
	case Expire, Notify:
		return LoopType(s), nil
	}
	return LoopType(s), fmt.Errorf(`%w: "%s"`, ErrUnknownLoopType, s)
}
