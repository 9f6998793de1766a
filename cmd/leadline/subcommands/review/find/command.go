package find

import (
	"context"
	"log"

	krst "github.com/opst/leadline/cmd/leadline/rest"
	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Status    []string `flag:"status" metavar:"pending|approved|rejected" help:"Status of reviews to be found. Repeatable. Default: pending"`
	Entity    []string `flag:"entity" metavar:"lead|client|raw_data|document" help:"Type of reviewed entities. Repeatable."`
	Submitter []string `flag:"submitter" metavar:"PROFILE_ID" help:"Profile who submitted reviews. Repeatable. Admins only."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find reviews in the review queue.",
		Flag{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Find reviews that satisfy all specified conditions, and print them as json.

Without --status, pending reviews are found.
Admins see all reviews. Others see reviews they have submitted.

Example
-------

Pending reviews of leads and raw data:

	{{ .Command }} --entity lead --entity raw_data

Rejected reviews:

	{{ .Command }} --status rejected
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
		query := krst.ReviewQuery{
			Status:     flags.Status,
			EntityType: flags.Entity,
			Submitter:  flags.Submitter,
		}
		if len(query.Status) == 0 {
			query.Status = []string{"pending"}
		}

		found, err := client.FindReviews(ctx, query)
		if err != nil {
			return err
		}
		logger.Printf("%d review(s) found.", len(found))
		return common.PrintJSON(cl.Stdout(), found)
	}
}
