package lead

import (
	lead_convert "github.com/opst/leadline/cmd/leadline/subcommands/lead/convert"
	lead_create "github.com/opst/leadline/cmd/leadline/subcommands/lead/create"
	lead_find "github.com/opst/leadline/cmd/leadline/subcommands/lead/find"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := lead_find.New()
	if err != nil {
		return nil, err
	}
	create, err := lead_create.New()
	if err != nil {
		return nil, err
	}
	convert, err := lead_convert.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate leads.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("convert", convert),
	)
}
