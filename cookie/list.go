package cookie

import "sync"

// List an append-only sequence of outgoing cookies.
// It is safe for concurrent use by multiple goroutines.
// The zero value is ready to use.
type List struct {
	mu      sync.Mutex
	cookies []*Cookie
}

// NewList returns an empty List.
func NewList() *List {
	return new(List)
}

// Add appends the cookies in order, nil cookies are ignored.
func (l *List) Add(cookies ...*Cookie) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, c := range cookies {
		if c != nil {
			l.cookies = append(l.cookies, c)
		}
	}
}

// Len returns the number of cookies.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.cookies)
}

// Snapshot returns the cookies added so far in order.
func (l *List) Snapshot() []*Cookie {
	l.mu.Lock()
	defer l.mu.Unlock()
	snapshot := make([]*Cookie, len(l.cookies))
	copy(snapshot, l.cookies)
	return snapshot
}
