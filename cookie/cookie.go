// Package cookie the HTTP cookie entity, the Cookie header parser and the
// Set-Cookie serializer
package cookie

import "time"

// Cookie an HTTP cookie exchanged through the Cookie and Set-Cookie headers.
// Empty Path and Domain are absent; nil MaxAge and Expires are absent.
type Cookie struct {
	Name     string     `json:"name" yaml:"name"`
	Value    string     `json:"value" yaml:"value"`
	Domain   string     `json:"domain,omitempty" yaml:"domain,omitempty"`
	Path     string     `json:"path,omitempty" yaml:"path,omitempty"`
	Version  int        `json:"version,omitempty" yaml:"version,omitempty"`
	MaxAge   *int       `json:"max_age,omitempty" yaml:"max_age,omitempty"`
	Expires  *time.Time `json:"expires,omitempty" yaml:"expires,omitempty"`
	Secure   bool       `json:"secure,omitempty" yaml:"secure,omitempty"`
	HTTPOnly bool       `json:"http_only,omitempty" yaml:"http_only,omitempty"`
	Discard  bool       `json:"discard,omitempty" yaml:"discard,omitempty"`
}

// Option configures a Cookie created by New.
type Option func(*Cookie)

// New returns a cookie with the name, value and options.
func New(name, value string, opts ...Option) *Cookie {
	c := &Cookie{Name: name, Value: value}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithPath sets the Path attribute.
func WithPath(path string) Option {
	return func(c *Cookie) { c.Path = path }
}

// WithDomain sets the Domain attribute.
func WithDomain(domain string) Option {
	return func(c *Cookie) { c.Domain = domain }
}

// WithVersion sets the cookie version.
func WithVersion(version int) Option {
	return func(c *Cookie) { c.Version = version }
}

// WithMaxAge sets the Max-Age attribute in seconds.
func WithMaxAge(seconds int) Option {
	return func(c *Cookie) { c.SetMaxAge(seconds) }
}

// WithExpires sets the Expires attribute.
func WithExpires(t time.Time) Option {
	return func(c *Cookie) { c.SetExpires(t) }
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(c *Cookie) { c.Secure = secure }
}

// WithHTTPOnly sets the HttpOnly flag.
func WithHTTPOnly(httpOnly bool) Option {
	return func(c *Cookie) { c.HTTPOnly = httpOnly }
}

// WithDiscard sets the Discard flag.
func WithDiscard(discard bool) Option {
	return func(c *Cookie) { c.Discard = discard }
}

// SetPath sets the Path attribute and returns the cookie.
func (c *Cookie) SetPath(path string) *Cookie {
	c.Path = path
	return c
}

// SetDomain sets the Domain attribute and returns the cookie.
func (c *Cookie) SetDomain(domain string) *Cookie {
	c.Domain = domain
	return c
}

// SetVersion sets the version and returns the cookie.
func (c *Cookie) SetVersion(version int) *Cookie {
	c.Version = version
	return c
}

// SetMaxAge sets the Max-Age attribute and returns the cookie.
func (c *Cookie) SetMaxAge(seconds int) *Cookie {
	c.MaxAge = &seconds
	return c
}

// SetExpires sets the Expires attribute and returns the cookie.
func (c *Cookie) SetExpires(t time.Time) *Cookie {
	c.Expires = &t
	return c
}

// SetSecure sets the Secure flag and returns the cookie.
func (c *Cookie) SetSecure(secure bool) *Cookie {
	c.Secure = secure
	return c
}

// SetHTTPOnly sets the HttpOnly flag and returns the cookie.
func (c *Cookie) SetHTTPOnly(httpOnly bool) *Cookie {
	c.HTTPOnly = httpOnly
	return c
}

// SetDiscard sets the Discard flag and returns the cookie.
func (c *Cookie) SetDiscard(discard bool) *Cookie {
	c.Discard = discard
	return c
}

// String returns the Set-Cookie header value of the cookie.
func (c *Cookie) String() string {
	return c.Format(DateString)
}
