package cookie

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// HeaderSetCookie the header of version 0 cookies
	HeaderSetCookie = "Set-Cookie"
	// HeaderSetCookie2 the header of version 1 cookies
	HeaderSetCookie2 = "Set-Cookie2"
)

// DateString formats t as an HTTP date in GMT.
func DateString(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}

// HeaderName returns the response header name of the cookie.
func (c *Cookie) HeaderName() string {
	if c.Version == 1 {
		return HeaderSetCookie2
	}
	return HeaderSetCookie
}

// Format returns the response header value of the cookie.
// Attributes are written in the fixed order Version, Path, Domain, Discard,
// Secure, HttpOnly, Max-Age, Expires, each terminated by "; ".
// Path and Domain are written as is.
// If date is nil, DateString is used for Expires.
func (c *Cookie) Format(date func(time.Time) string) string {
	if date == nil {
		date = DateString
	}

	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(`="`)
	b.WriteString(c.Value)
	b.WriteString(`"; `)
	if c.Version == 1 {
		b.WriteString(`Version="1"; `)
	}
	if c.Path != "" {
		b.WriteString("Path=")
		b.WriteString(c.Path)
		b.WriteString("; ")
	}
	if c.Domain != "" {
		b.WriteString("Domain=")
		b.WriteString(c.Domain)
		b.WriteString("; ")
	}
	if c.Discard {
		b.WriteString("Discard; ")
	}
	if c.Secure {
		b.WriteString("Secure; ")
	}
	if c.HTTPOnly {
		b.WriteString("HttpOnly; ")
	}
	if c.MaxAge != nil {
		b.WriteString("Max-Age=")
		b.WriteString(strconv.Itoa(*c.MaxAge))
		b.WriteString("; ")
	}
	if c.Expires != nil {
		b.WriteString("Expires=")
		b.WriteString(date(*c.Expires))
		b.WriteString("; ")
	}
	return b.String()
}
