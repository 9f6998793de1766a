package create

import (
	"context"
	"fmt"
	"log"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	apirequests "github.com/opst/leadline/pkg/api/types/requests"
	"github.com/opst/leadline/pkg/utils/args"
	"github.com/opst/leadline/pkg/utils/rfctime"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Start   *args.Adapter[rfctime.RFC3339] `flag:"start" metavar:"RFC3339" help:"Requested start time. Required."`
	End     *args.Adapter[rfctime.RFC3339] `flag:"end" metavar:"RFC3339" help:"Requested end time. Required."`
	Purpose string                         `flag:"purpose" help:"Purpose of the appointment."`
}

const ARG_CLIENT_ID = "CLIENT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Request an appointment with a client.",
		Flag{
			Start: args.Parser(rfctime.ParseRFC3339DateTime),
			End:   args.Parser(rfctime.ParseRFC3339DateTime),
		},
		flarc.Args{
			{
				Name: ARG_CLIENT_ID, Required: true,
				Help: "Id of the client to meet.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Request an appointment with a client. Sales and interns can do it.

The request is pending until an admin approves or rejects it.
Requests not decided until their start time are cancelled.

Example
-------

	{{ .Command }} --start 2024-05-10T14:00:00+09:00 --end 2024-05-10T15:00:00+09:00 --purpose "demo" client-1
`),
	)
}

func Task() common.Task[Flag] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		client krst.Client,
		cl flarc.Commandline[Flag],
		params []any,
	) error {
		flags := cl.Flags()
		if flags.Start == nil || !flags.Start.IsSet() {
			return fmt.Errorf("%w: --start is required", flarc.ErrUsage)
		}
		if flags.End == nil || !flags.End.IsSet() {
			return fmt.Errorf("%w: --end is required", flarc.ErrUsage)
		}
		start, end := flags.Start.Value(), flags.End.Value()
		if !start.Time().Before(end.Time()) {
			return fmt.Errorf("%w: --start should be before --end", flarc.ErrUsage)
		}

		req, err := client.CreateRequest(ctx, apirequests.CreateRequest{
			ClientId:       cl.Args()[ARG_CLIENT_ID][0],
			RequestedStart: start,
			RequestedEnd:   end,
			Purpose:        flags.Purpose,
		})
		if err != nil {
			return err
		}
		logger.Printf("appointment request %s is made. it is %s.", req.Id, req.Status)
		return common.PrintJSON(cl.Stdout(), req)
	}
}
