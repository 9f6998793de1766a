package find

import (
	"context"
	"log"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Status    []string `flag:"status" metavar:"pending|approved|rejected|cancelled" help:"Status of requests to be found. Repeatable."`
	Client    []string `flag:"client" metavar:"CLIENT_ID" help:"Client of requests. Repeatable."`
	Requester []string `flag:"requester" metavar:"PROFILE_ID" help:"Profile who made requests. Repeatable. Admins only."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find appointment requests.",
		Flag{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Find appointment requests that satisfy all specified conditions, and print them as json.

Admins see all requests. Others see requests they have made.

Example
-------

	{{ .Command }} --status pending
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
		found, err := client.FindRequests(ctx, krst.RequestQuery{
			Status:    flags.Status,
			Client:    flags.Client,
			Requester: flags.Requester,
		})
		if err != nil {
			return err
		}
		return common.PrintJSON(cl.Stdout(), found)
	}
}
