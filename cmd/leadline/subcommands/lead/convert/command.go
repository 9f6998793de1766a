package convert

import (
	"context"
	"log"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	"github.com/youta-t/flarc"
)

const ARG_LEAD_ID = "LEAD_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Convert a qualified lead into a client.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_LEAD_ID, Required: true,
				Help: "Id of the lead to be converted.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Convert a qualified lead into a client owned by you. Admins and sales can do it.

The lead becomes "converted", and the new client is printed.
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
		conv, err := client.ConvertLead(ctx, cl.Args()[ARG_LEAD_ID][0])
		if err != nil {
			return err
		}
		logger.Printf("lead %s is converted into client %s.", conv.LeadId, conv.Client.Id)
		return common.PrintJSON(cl.Stdout(), conv)
	}
}
