package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opst/leadline/cmd/loops/hook"
	"github.com/opst/leadline/cmd/loops/recurring"
	"github.com/opst/leadline/pkg/api/types/requests"
	cfg_hook "github.com/opst/leadline/pkg/configs/hook"
	sconf "github.com/opst/leadline/pkg/configs/server"
	"github.com/opst/leadline/pkg/domain"
	kpg "github.com/opst/leadline/pkg/domain/leadline/db/postgres"
	"github.com/opst/leadline/pkg/utils/args"
	"github.com/opst/leadline/pkg/utils/filewatch"
	"github.com/opst/leadline/pkg/utils/retry"
	"github.com/opst/leadline/pkg/utils/try"
)

func main() {
	logger := log.Default()
	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	pconfig := flag.String(
		"config", os.Getenv("LEADLINE_CONFIG"), "path to config file",
	)
	pSchemaRepo := flag.String(
		"schema-repo", os.Getenv("LEADLINE_SCHEMA"), "schema repository path",
	)
	phooks := flag.String(
		"hooks", os.Getenv("LEADLINE_HOOK_CONFIG"), "path to hook config file",
	)
	loopType := args.Parser(domain.AsLoopType)
	flag.Var(loopType, "type", "loop type (expire|notify)")
	policy := args.Parser(recurring.ParsePolicy)
	flag.Var(
		policy, "policy",
		`loop policy (syntax: forever[:COOLDOWN]|backlog).`+
			` "forever[:COOLDOWN]" = run until error, waiting COOLDOWN when nothing is left.`+
			` "backlog" = run until error or nothing is left.`,
	)
	flag.Parse()

	if !loopType.IsSet() {
		logger.Fatal("--type is required")
	}
	if !policy.IsSet() {
		policy.Set("forever:10s")
	}

	{
		watched := []string{*pconfig}
		if *phooks != "" {
			watched = append(watched, *phooks)
		}
		wctx, cancel, err := filewatch.UntilModifyContext(ctx, watched...)
		if err != nil {
			logger.Fatal(err)
		}
		defer cancel()
		ctx = wctx
	}

	conf := try.To(sconf.Load(*pconfig)).OrFatal(logger)
	db := try.To(kpg.New(ctx, conf.DBURI(), kpg.WithSchemaRepository(*pSchemaRepo))).OrFatal(logger)
	defer db.Close()

	{
		sctx, scancel := db.Schema().Context(ctx)
		defer scancel()
		ctx = sctx
	}

	hooks := cfg_hook.Config{}
	if *phooks != "" {
		hooks = try.To(cfg_hook.Load(*phooks)).OrFatal(logger)
	}

	logger.Printf(`start loop "%s" /w policy "%s"`, loopType.Value(), policy.Value())

	err := StartLoop(
		ctx, logger, db,
		LoopManifest{
			Type:   loopType.Value(),
			Policy: recurring.UntilError(policy.Value()),
			Hook: hook.Web[requests.Event]{
				URLs: hooks.Appointment.After,
				Backoff: func() retry.Backoff {
					return retry.Limited(3, retry.ExponentialBackoff(500*time.Millisecond, 2))
				},
			},
		},
	)

	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		logger.Fatal(err, " (loop context is cancelled by: ", context.Cause(ctx), ")")
	}
	logger.Fatal(err)
}
