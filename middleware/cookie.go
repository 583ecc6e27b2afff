// Package middleware the echo middleware that parses request cookies and
// writes the outgoing cookies before the response is sent
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shiroyk/biscuit/cookie"
)

// ErrNotInstalled the cookie middleware did not run for the request
var ErrNotInstalled = errors.New("cookie middleware is not installed")

const stateKey = "biscuit.cookie.state"

// State the cookies of a single request.
type State struct {
	// Request the parsed request cookies, read only.
	Request *cookie.Cookies
	// Response the cookies written before the response is sent.
	Response *cookie.List

	log *slog.Logger
}

// CookieConfig the cookie middleware configuration
type CookieConfig struct {
	// Skipper defines a function to skip middleware.
	Skipper middleware.Skipper

	// Logger receives the warning when a cookie can not be sent.
	// Default is slog.Default().
	Logger *slog.Logger

	// DateFormat formats the Expires attribute.
	// Default is cookie.DateString.
	DateFormat func(time.Time) string
}

// DefaultCookieConfig the default cookie middleware config
var DefaultCookieConfig = CookieConfig{
	Skipper:    middleware.DefaultSkipper,
	DateFormat: cookie.DateString,
}

// Cookie returns a cookie middleware with the default config.
func Cookie() echo.MiddlewareFunc {
	return CookieWithConfig(DefaultCookieConfig)
}

// CookieWithConfig returns a cookie middleware with config.
// The middleware parses the Cookie headers, attaches a State to the context
// and registers a hook that adds a Set-Cookie header for each outgoing
// cookie right before the response header is written.
func CookieWithConfig(config CookieConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = DefaultCookieConfig.Skipper
	}
	if config.DateFormat == nil {
		config.DateFormat = DefaultCookieConfig.DateFormat
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			state := &State{
				Request:  cookie.Parse(c.Request().Header.Values(echo.HeaderCookie)...),
				Response: cookie.NewList(),
				log:      config.Logger,
			}
			c.Set(stateKey, state)

			var once sync.Once
			res := c.Response()
			res.Before(func() {
				once.Do(func() {
					writeCookies(c, res, state.Response.Snapshot(), config)
				})
			})

			err := next(c)
			if err == nil && !res.Committed {
				// nothing was written, commit so the hook runs before the implicit flush
				code := res.Status
				if code == 0 {
					code = http.StatusOK
				}
				res.WriteHeader(code)
			}
			return err
		}
	}
}

// writeCookies adds the response header for each cookie in order.
// A cookie is skipped if the response is already committed.
func writeCookies(c echo.Context, res *echo.Response, cookies []*cookie.Cookie, config CookieConfig) {
	for _, ck := range cookies {
		if res.Committed {
			warnCommitted(c, config.Logger, ck)
			continue
		}
		res.Header().Add(ck.HeaderName(), ck.Format(config.DateFormat))
	}
}

func warnCommitted(c echo.Context, log *slog.Logger, ck *cookie.Cookie) {
	if log == nil {
		log = slog.Default()
	}
	log.Warn("could not send cookie as response already started",
		"name", ck.Name, "uri", c.Request().RequestURI)
}

// FromContext returns the State of the request.
func FromContext(c echo.Context) (*State, bool) {
	state, ok := c.Get(stateKey).(*State)
	return state, ok
}

// RequestCookies returns the parsed request cookies,
// or empty Cookies if the middleware is not installed.
func RequestCookies(c echo.Context) *cookie.Cookies {
	if state, ok := FromContext(c); ok {
		return state.Request
	}
	return cookie.Parse()
}

// AddCookie adds the cookies to be sent with the response.
// If the response is already committed the cookies are dropped
// with a warning.
func AddCookie(c echo.Context, cookies ...*cookie.Cookie) error {
	state, ok := FromContext(c)
	if !ok {
		return ErrNotInstalled
	}
	if c.Response().Committed {
		for _, ck := range cookies {
			if ck != nil {
				warnCommitted(c, state.log, ck)
			}
		}
		return nil
	}
	state.Response.Add(cookies...)
	return nil
}
