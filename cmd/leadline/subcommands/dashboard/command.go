package dashboard

import (
	"context"
	"log"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the dashboard for your role.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show the summary for your role as json.

Admins see leads by status, pending reviews and requests, incentive totals and active profiles.
Sales see their leads, pending requests and upcoming appointments.
Interns see their submissions by review status.
`),
	)
}

func Task() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		client krst.Client,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		d, err := client.Dashboard(ctx)
		if err != nil {
			return err
		}
		return common.PrintJSON(cl.Stdout(), d)
	}
}
