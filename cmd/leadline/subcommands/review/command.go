package review

import (
	review_decide "github.com/opst/leadline/cmd/leadline/subcommands/review/decide"
	review_find "github.com/opst/leadline/cmd/leadline/subcommands/review/find"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := review_find.New()
	if err != nil {
		return nil, err
	}
	decide, err := review_decide.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manipulate the review queue.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("decide", decide),
	)
}
