// Package decide has subcommands moving appointment requests out of pending.
package decide

import (
	"context"
	"log"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Note string `flag:"note" metavar:"TEXT" help:"Note left on the request."`
}

const ARG_REQUEST_ID = "REQUEST_ID"

// Action is what is done to a pending request.
type Action func(ctx context.Context, client krst.Client, requestId string, note string) (any, error)

func Approve(ctx context.Context, client krst.Client, requestId string, note string) (any, error) {
	return client.ApproveRequest(ctx, requestId, note)
}

func Reject(ctx context.Context, client krst.Client, requestId string, note string) (any, error) {
	return client.RejectRequest(ctx, requestId, note)
}

func Cancel(ctx context.Context, client krst.Client, requestId string, _ string) (any, error) {
	return client.CancelRequest(ctx, requestId)
}

func NewApprove() (flarc.Command, error) {
	return flarc.NewCommand(
		"Approve a pending appointment request. Admins only.",
		Flag{},
		requestId("Id of the request to be approved."),
		common.NewTask(Task(Approve, "approved")),
		flarc.WithDescription(`
Approve a pending appointment request.
The client appointment is made in the same time, and printed with the request.
`),
	)
}

func NewReject() (flarc.Command, error) {
	return flarc.NewCommand(
		"Reject a pending appointment request. Admins only.",
		Flag{},
		requestId("Id of the request to be rejected."),
		common.NewTask(Task(Reject, "rejected")),
	)
}

func NewCancel() (flarc.Command, error) {
	return flarc.NewCommand(
		"Cancel your pending appointment request.",
		struct{}{},
		requestId("Id of the request to be cancelled."),
		common.NewTask(cancelTask()),
	)
}

func requestId(help string) flarc.Args {
	return flarc.Args{{Name: ARG_REQUEST_ID, Required: true, Help: help}}
}

func Task(action Action, done string) common.Task[Flag] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		client krst.Client,
		cl flarc.Commandline[Flag],
		params []any,
	) error {
		id := cl.Args()[ARG_REQUEST_ID][0]
		ret, err := action(ctx, client, id, cl.Flags().Note)
		if err != nil {
			return err
		}
		logger.Printf("appointment request %s is %s.", id, done)
		return common.PrintJSON(cl.Stdout(), ret)
	}
}

func cancelTask() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		client krst.Client,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		id := cl.Args()[ARG_REQUEST_ID][0]
		ret, err := Cancel(ctx, client, id, "")
		if err != nil {
			return err
		}
		logger.Printf("appointment request %s is cancelled.", id)
		return common.PrintJSON(cl.Stdout(), ret)
	}
}
