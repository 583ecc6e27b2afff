package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shiroyk/biscuit/cookie"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

// ErrMissingName the cookie name flag is missing
var ErrMissingName = errors.New("cookie name is required")

var (
	formatCookie  = new(cookie.Cookie)
	formatMaxAge  int
	formatExpires string
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "print the Set-Cookie header of a cookie",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := *formatCookie
		if cmd.Flags().Changed("max-age") {
			c.SetMaxAge(formatMaxAge)
		}
		if cmd.Flags().Changed("expires") {
			t, err := parseExpires(formatExpires)
			if err != nil {
				return err
			}
			c.SetExpires(t)
		}
		return format(cmd.OutOrStdout(), &c)
	},
}

func format(w io.Writer, c *cookie.Cookie) error {
	if c.Name == "" {
		return ErrMissingName
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", c.HeaderName(), c)
	return err
}

// parseExpires parses unix seconds or a date.
func parseExpires(s string) (time.Time, error) {
	if unix, err := cast.ToInt64E(s); err == nil {
		return time.Unix(unix, 0), nil
	}
	t, err := cast.ToTimeE(s)
	if err != nil {
		return t, fmt.Errorf("invalid expires: %w", err)
	}
	return t, nil
}

func init() {
	flags := formatCmd.Flags()
	flags.StringVarP(&formatCookie.Name, "name", "n", "", "cookie name")
	flags.StringVarP(&formatCookie.Value, "value", "v", "", "cookie value")
	flags.StringVar(&formatCookie.Path, "path", "", "Path attribute")
	flags.StringVar(&formatCookie.Domain, "domain", "", "Domain attribute")
	flags.IntVar(&formatCookie.Version, "version", 0, "cookie version, 1 writes Set-Cookie2")
	flags.IntVar(&formatMaxAge, "max-age", 0, "Max-Age attribute in seconds")
	flags.StringVar(&formatExpires, "expires", "", "Expires attribute, a date or unix seconds")
	flags.BoolVar(&formatCookie.Secure, "secure", false, "Secure flag")
	flags.BoolVar(&formatCookie.HTTPOnly, "http-only", false, "HttpOnly flag")
	flags.BoolVar(&formatCookie.Discard, "discard", false, "Discard flag")
	rootCmd.AddCommand(formatCmd)
}
