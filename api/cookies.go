package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shiroyk/biscuit/cookie"
	"github.com/shiroyk/biscuit/middleware"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCookie the cookie is missing a name
var ErrInvalidCookie = errors.New("cookie name is required")

// RouteCookies the cookie routes
func RouteCookies(e *echo.Echo) {
	cookies := e.Group("/cookies")
	cookies.GET("", listCookies)
	cookies.POST("", addCookies)
	cookies.Match([]string{http.MethodGet, http.MethodPost}, "/set", setCookie)
}

// listCookies responds the request cookies in order of first occurrence.
func listCookies(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.RequestCookies(c))
}

// addCookies adds the cookies of the YAML or JSON body.
func addCookies(c echo.Context) error {
	var cookies []*cookie.Cookie
	if err := yaml.NewDecoder(c.Request().Body).Decode(&cookies); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	for _, ck := range cookies {
		if ck == nil || ck.Name == "" {
			return echo.NewHTTPError(http.StatusBadRequest, ErrInvalidCookie.Error())
		}
	}
	if err := middleware.AddCookie(c, cookies...); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// setCookie adds the cookie described by the query parameters.
func setCookie(c echo.Context) error {
	ck, err := cookieFromQuery(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
	}
	if err = middleware.AddCookie(c, ck); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func cookieFromQuery(c echo.Context) (*cookie.Cookie, error) {
	name := c.QueryParam("name")
	if name == "" {
		return nil, ErrInvalidCookie
	}
	ck := cookie.New(name, c.QueryParam("value"),
		cookie.WithPath(c.QueryParam("path")),
		cookie.WithDomain(c.QueryParam("domain")))

	if v := c.QueryParam("version"); v != "" {
		version, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid version: %w", err)
		}
		ck.SetVersion(version)
	}
	if v := c.QueryParam("max_age"); v != "" {
		maxAge, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid max_age: %w", err)
		}
		ck.SetMaxAge(maxAge)
	}
	if v := c.QueryParam("expires"); v != "" {
		unix, err := cast.ToInt64E(v)
		if err != nil {
			return nil, fmt.Errorf("invalid expires: %w", err)
		}
		ck.SetExpires(time.Unix(unix, 0))
	}

	flags := []struct {
		key string
		set func(bool) *cookie.Cookie
	}{
		{"secure", ck.SetSecure},
		{"http_only", ck.SetHTTPOnly},
		{"discard", ck.SetDiscard},
	}
	for _, flag := range flags {
		v := c.QueryParam(flag.key)
		if v == "" {
			continue
		}
		b, err := cast.ToBoolE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", flag.key, err)
		}
		flag.set(b)
	}

	return ck, nil
}
