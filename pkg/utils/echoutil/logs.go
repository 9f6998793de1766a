package echoutil

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/opst/leadline/pkg/auth"
)

// LogHandlerFunc logs each request and its response with who made it.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		begin := time.Now()
		c.Logger().Infof("< %s %s", req.Method, req.URL)

		err := next(c)

		who := "anonymous"
		if p, ok := auth.PrincipalOf(c); ok {
			who = p.ProfileId + "(" + p.Role.String() + ")"
		}
		if err != nil {
			// echo has not written the response yet. the error handler decides the status.
			c.Logger().Infof(
				"> %s %s by %s in %v: error = %v",
				req.Method, req.URL, who, time.Since(begin), err,
			)
			return err
		}
		c.Logger().Infof(
			"> %s %s by %s in %v: status = %d",
			req.Method, req.URL, who, time.Since(begin), c.Response().Status,
		)
		return nil
	}
}

// SetLevel sets the log level of e by name. Unknown names fall back to warn.
func SetLevel(e *echo.Echo, loglevel string) {
	switch strings.ToLower(loglevel) {
	case "debug":
		e.Logger.SetLevel(log.DEBUG)
	case "info":
		e.Logger.SetLevel(log.INFO)
	case "warn", "":
		e.Logger.SetLevel(log.WARN)
	case "error":
		e.Logger.SetLevel(log.ERROR)
	case "off":
		e.Logger.SetLevel(log.OFF)
	default:
		e.Logger.SetLevel(log.WARN)
		e.Logger.Warnf("unknown loglevel: %s . fall-backed to warn", loglevel)
	}
}
