package create

import (
	"context"
	"fmt"
	"log"
	"strings"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	apileads "github.com/opst/leadline/pkg/api/types/leads"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Email    string `flag:"email" help:"Email address of the lead."`
	Phone    string `flag:"phone" help:"Phone number of the lead."`
	Company  string `flag:"company" help:"Company of the lead."`
	Source   string `flag:"source" help:"Where the lead comes from."`
	Notes    string `flag:"notes" help:"Free text."`
	Assignee string `flag:"assignee" metavar:"PROFILE_ID" help:"Sales to be assigned. Admins only."`
}

const ARG_NAME = "NAME"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Create a lead.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_NAME, Required: true,
				Help: "Name of the lead.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Create a lead.

Leads created by interns are pending until an admin approves their review.

Example
-------

	{{ .Command }} --email jane@example.com --company "Example Inc." "Jane Doe"
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
		name := strings.TrimSpace(cl.Args()[ARG_NAME][0])
		if name == "" {
			return fmt.Errorf("%w: %s is empty", flarc.ErrUsage, ARG_NAME)
		}

		req := apileads.CreateRequest{
			Name:    name,
			Email:   flags.Email,
			Phone:   flags.Phone,
			Company: flags.Company,
			Source:  flags.Source,
			Notes:   flags.Notes,
		}
		if flags.Assignee != "" {
			req.AssignedTo = &flags.Assignee
		}

		lead, err := client.CreateLead(ctx, req)
		if err != nil {
			return err
		}
		logger.Printf("lead %s is created (review: %s).", lead.Id, lead.ReviewStatus)
		return common.PrintJSON(cl.Stdout(), lead)
	}
}
