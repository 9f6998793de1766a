package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/opst/leadline/pkg/auth"
	"github.com/opst/leadline/pkg/buildtime"
	sconf "github.com/opst/leadline/pkg/configs/server"
	"github.com/opst/leadline/pkg/domain/leadline"
	"github.com/opst/leadline/pkg/utils/echoutil"
	"github.com/opst/leadline/pkg/utils/filewatch"
	kos "github.com/opst/leadline/pkg/utils/os"
	"github.com/opst/leadline/pkg/utils/retry"
	"github.com/opst/leadline/pkg/utils/try"
)

func main() {
	logger := log.Default()
	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	configPath := flag.String("config", os.Getenv("LEADLINE_CONFIG"), "path to config file")
	schemaRepo := flag.String("schema-repo", os.Getenv("LEADLINE_SCHEMA"), "schema repository path")
	loglevel := flag.String("loglevel", kos.GetEnvOr("LEADLINE_LOGLEVEL", "info"), "log level. debug|info|warn|error|off")
	pcert := flag.String("cert", "", "certification file for TLS")
	pkey := flag.String("certkey", "", "key of certification file for TLS")
	flag.Parse()
	logger.Printf("leadlined %s", buildtime.VersionString())

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.AddTrailingSlash())

	echoutil.SetLevel(e, *loglevel)
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		e.DefaultHTTPErrorHandler(err, c)
		var herr *echo.HTTPError
		if errors.As(err, &herr) && herr.Code < http.StatusInternalServerError {
			e.Logger.Info(err)
			return
		}
		e.Logger.Error(err)
	}
	e.Use(echoutil.LogHandlerFunc)

	conf := try.To(sconf.Load(*configPath)).OrFatal(logger)

	{
		wctx, wcancel, err := filewatch.UntilModifyContext(ctx, *configPath)
		if err != nil {
			logger.Fatalf("can not watch configuration: %s", err)
		}
		defer wcancel()
		ctx = wctx
	}

	ll := try.To(leadline.New(ctx, conf, leadline.WithSchemaRepository(*schemaRepo))).OrFatal(logger)
	defer ll.Close()

	if _, err := retry.Blocking(
		ctx, retry.Limited(10, retry.ExponentialBackoff(time.Second, 1.5)),
		func() (struct{}, error) {
			if err := ll.Database().Ping(ctx); err != nil {
				logger.Printf("database is not ready: %s", err)
				return struct{}{}, fmt.Errorf("%w: %w", retry.ErrRetry, err)
			}
			return struct{}{}, nil
		},
	); err != nil {
		logger.Fatalf("can not connect to database: %s", err)
	}

	{
		sctx, scancel := ll.Database().Schema().Context(ctx)
		defer scancel()
		ctx = sctx
	}

	server{
		db:            ll.Database(),
		documents:     ll.Documents(),
		tokens:        auth.New(conf.SignKey(), conf.TokenTTL()),
		publicMetrics: conf.PublicMetrics(),
		now:           time.Now,
	}.register(e)

	logger.Println("registered routes:")
	for _, r := range e.Routes() {
		logger.Println(r.Method, r.Path)
	}

	context.AfterFunc(ctx, func() {
		logger.Printf("shutting down: %s", context.Cause(ctx))
		graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := e.Shutdown(graceful); err != nil {
			logger.Printf("error on shutdown: %s", err)
		}
	})

	addr := fmt.Sprintf(":%d", conf.Port())
	var err error
	if cert, key := *pcert, *pkey; cert != "" && key != "" {
		err = e.StartTLS(addr, cert, key)
	} else {
		err = e.Start(addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(err)
	}
}
