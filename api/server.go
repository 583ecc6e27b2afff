// Package api the demo cookie api server
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shiroyk/biscuit/middleware"
	"golang.org/x/net/http2"
)

const (
	// DefaultTimeout the default timeout
	DefaultTimeout = time.Minute
	// DefaultAddress the api default address
	DefaultAddress = "localhost:8080"
	// shutdownTimeout the time to wait for in-flight requests
	shutdownTimeout = 10 * time.Second
)

// Options the api server configuration
type Options struct {
	Logger  *slog.Logger  `yaml:"-"`
	Token   string        `yaml:"token"`
	Address string        `yaml:"address"`
	Timeout time.Duration `yaml:"timeout"`
	H2C     bool          `yaml:"h2c"`
}

// Server the api service
func Server(opt Options) *echo.Echo {
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	e := echo.New()
	e.HTTPErrorHandler = errorHandler(opt.Logger)
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = opt.Timeout
	e.Server.WriteTimeout = opt.Timeout
	e.Use(requestIDMiddleware(), loggerMiddleware(opt), authMiddleware(opt))
	e.Use(middleware.CookieWithConfig(middleware.CookieConfig{Logger: opt.Logger}))
	e.Any("/ping", ping)
	RouteCookies(e)
	return e
}

// Start starts the server and shuts it down when ctx is done.
func Start(ctx context.Context, e *echo.Echo, opt Options) error {
	if opt.Address == "" {
		opt.Address = DefaultAddress
	}
	errC := make(chan error, 1)
	go func() {
		var err error
		if opt.H2C {
			err = e.StartH2CServer(opt.Address, &http2.Server{IdleTimeout: opt.Timeout})
		} else {
			err = e.Start(opt.Address)
		}
		errC <- err
	}()

	select {
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	}
}

func errorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}
		if code >= http.StatusInternalServerError {
			log.Error("request error", "error", err, "uri", c.Request().RequestURI)
		}

		if err = c.JSON(code, map[string]string{"msg": msg}); err != nil {
			log.Error("write response error", "error", err)
		}
	}
}

func ping(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}
