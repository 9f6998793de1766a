package find

import (
	"context"
	"log"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Status   []string `flag:"status" metavar:"new|contacted|qualified|converted|lost" help:"Status of leads. Repeatable."`
	Assignee []string `flag:"assignee" metavar:"PROFILE_ID" help:"Assignee of leads. Repeatable."`
	Creator  []string `flag:"creator" metavar:"PROFILE_ID" help:"Profile who created leads. Repeatable."`
	Review   []string `flag:"review" metavar:"pending|approved|rejected" help:"Review status of leads. Repeatable."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find leads.",
		Flag{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Find leads that satisfy all specified conditions, and print them as json.

Admins see all leads. Sales see leads assigned to or created by them.
Interns see leads they have created.

Example
-------

	{{ .Command }} --status new --status contacted
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
		found, err := client.FindLeads(ctx, krst.LeadQuery{
			Status:   flags.Status,
			Assignee: flags.Assignee,
			Creator:  flags.Creator,
			Review:   flags.Review,
		})
		if err != nil {
			return err
		}
		return common.PrintJSON(cl.Stdout(), found)
	}
}
