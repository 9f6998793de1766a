package decide

import (
	"context"
	"fmt"
	"log"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	apireviews "github.com/opst/leadline/pkg/api/types/reviews"
	"github.com/opst/leadline/pkg/utils"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Reject bool   `flag:"reject" alias:"x" help:"Reject reviews. Otherwise they are approved."`
	Note   string `flag:"note" metavar:"TEXT" help:"Note left on reviews."`
}

const ARG_REVIEW_ID = "REVIEW_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Approve or reject reviews at once. Admins only.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_REVIEW_ID, Required: true, Repeatable: true,
				Help: "Id of reviews to be decided.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Approve (or reject, with --reject) pending reviews at once.

Reviews are decided all together or not at all:
if one of them is missing or already decided, nothing is changed.

Approving raw data makes a lead from it. The id of the lead is printed with the review.

Example
-------

	{{ .Command }} review-1 review-2
	{{ .Command }} --reject --note "duplicated" review-3
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
		ids := utils.Unique(cl.Args()[ARG_REVIEW_ID])

		decision := "approved"
		if flags.Reject {
			decision = "rejected"
		}

		outcomes, err := client.DecideReviews(ctx, apireviews.DecisionRequest{
			ReviewIds: ids,
			Decision:  decision,
			Note:      flags.Note,
		})
		if err != nil {
			return err
		}

		for _, o := range outcomes {
			msg := fmt.Sprintf("review %s (%s %s) is %s.", o.Id, o.EntityType, o.EntityId, o.Status)
			if o.CreatedLeadId != nil {
				msg += fmt.Sprintf(" lead %s is created.", *o.CreatedLeadId)
			}
			logger.Println(msg)
		}
		return common.PrintJSON(cl.Stdout(), outcomes)
	}
}
