package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/opst/leadline/cmd/leadline/subcommands/common"
	subdashboard "github.com/opst/leadline/cmd/leadline/subcommands/dashboard"
	subdocument "github.com/opst/leadline/cmd/leadline/subcommands/document"
	sublead "github.com/opst/leadline/cmd/leadline/subcommands/lead"
	"github.com/opst/leadline/cmd/leadline/subcommands/logger"
	sublogin "github.com/opst/leadline/cmd/leadline/subcommands/login"
	subrequest "github.com/opst/leadline/cmd/leadline/subcommands/request"
	subreview "github.com/opst/leadline/cmd/leadline/subcommands/review"
	subver "github.com/opst/leadline/cmd/leadline/subcommands/version"
	subwhoami "github.com/opst/leadline/cmd/leadline/subcommands/whoami"
	"github.com/opst/leadline/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	login := try.To(sublogin.New()).OrFatal(logger)
	whoami := try.To(subwhoami.New()).OrFatal(logger)
	dashboard := try.To(subdashboard.New()).OrFatal(logger)
	review := try.To(subreview.New()).OrFatal(logger)
	request := try.To(subrequest.New()).OrFatal(logger)
	lead := try.To(sublead.New()).OrFatal(logger)
	document := try.To(subdocument.New()).OrFatal(logger)
	version := try.To(subver.New()).OrFatal(logger)

	leadline := try.To(
		flarc.NewCommandGroup(
			"Leadline command line interface",
			cf,
			flarc.WithSubcommand("login", login),
			flarc.WithSubcommand("whoami", whoami),
			flarc.WithSubcommand("dashboard", dashboard),
			flarc.WithSubcommand("review", review),
			flarc.WithSubcommand("request", request),
			flarc.WithSubcommand("lead", lead),
			flarc.WithSubcommand("document", document),
			flarc.WithSubcommand("version", version),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, leadline, flarc.WithHelp(true)))
}
