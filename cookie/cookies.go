package cookie

import (
	"encoding/json"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Cookies the cookies of a request keyed by name, in order of first occurrence.
// A later cookie with the same name replaces the value but keeps the position.
// Cookies is not modified after Parse returns, so it is safe for concurrent reads.
type Cookies struct {
	names   []string
	entries map[string]*Cookie
}

func newCookies() *Cookies {
	return &Cookies{entries: make(map[string]*Cookie)}
}

// put stores a parsed cookie, cookies without a name are dropped.
func (c *Cookies) put(name, value string) {
	if name == "" {
		return
	}
	if _, ok := c.entries[name]; !ok {
		c.names = append(c.names, name)
	}
	c.entries[name] = &Cookie{Name: name, Value: value}
}

// Get returns the cookie with the name.
func (c *Cookies) Get(name string) (*Cookie, bool) {
	if c == nil {
		return nil, false
	}
	cookie, ok := c.entries[name]
	return cookie, ok
}

// Value returns the value of the cookie with the name, or empty string.
func (c *Cookies) Value(name string) string {
	if cookie, ok := c.Get(name); ok {
		return cookie.Value
	}
	return ""
}

// Has reports whether the cookie with the name exists.
func (c *Cookies) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Len returns the number of cookies.
func (c *Cookies) Len() int {
	if c == nil {
		return 0
	}
	return len(c.names)
}

// Names returns the cookie names in order of first occurrence.
func (c *Cookies) Names() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.names)
}

// Sorted returns the cookie names in lexical order.
func (c *Cookies) Sorted() []string {
	if c == nil {
		return nil
	}
	names := maps.Keys(c.entries)
	slices.Sort(names)
	return names
}

// All returns copies of the cookies in order of first occurrence.
func (c *Cookies) All() []*Cookie {
	if c == nil {
		return nil
	}
	all := make([]*Cookie, 0, len(c.names))
	for _, name := range c.names {
		cookie := *c.entries[name]
		all = append(all, &cookie)
	}
	return all
}

// MarshalJSON encodes the cookies as an array in order of first occurrence.
func (c *Cookies) MarshalJSON() ([]byte, error) {
	all := c.All()
	if all == nil {
		all = []*Cookie{}
	}
	return json.Marshal(all)
}
