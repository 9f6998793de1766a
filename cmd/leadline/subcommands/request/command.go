package request

import (
	request_create "github.com/opst/leadline/cmd/leadline/subcommands/request/create"
	request_decide "github.com/opst/leadline/cmd/leadline/subcommands/request/decide"
	request_find "github.com/opst/leadline/cmd/leadline/subcommands/request/find"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := request_find.New()
	if err != nil {
		return nil, err
	}
	create, err := request_create.New()
	if err != nil {
		return nil, err
	}
	approve, err := request_decide.NewApprove()
	if err != nil {
		return nil, err
	}
	reject, err := request_decide.NewReject()
	if err != nil {
		return nil, err
	}
	cancel, err := request_decide.NewCancel()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate appointment requests.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("approve", approve),
		flarc.WithSubcommand("reject", reject),
		flarc.WithSubcommand("cancel", cancel),
	)
}
