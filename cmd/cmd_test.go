package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shiroyk/biscuit/cookie"
	"github.com/shiroyk/biscuit/lib/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		headers []string
		stdin   string
		sorted  bool
		want    string
	}{
		{"args", []string{"b=2; a=1"}, "", false, `[{"name":"b","value":"2"},{"name":"a","value":"1"}]`},
		{"sorted", []string{"b=2; a=1"}, "", true, `[{"name":"a","value":"1"},{"name":"b","value":"2"}]`},
		{"sorted duplicate", []string{"b=2; a=1", "b=3"}, "", true, `[{"name":"a","value":"1"},{"name":"b","value":"3"}]`},
		{"prefix", []string{"Cookie: a=1"}, "", false, `[{"name":"a","value":"1"}]`},
		{"stdin", nil, "a=1\r\n\nb=\"2\"\n", false, `[{"name":"a","value":"1"},{"name":"b","value":"2"}]`},
		{"dash", []string{"-"}, "a=1", false, `[{"name":"a","value":"1"}]`},
		{"empty", nil, "", false, `[]`},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := new(bytes.Buffer)
			require.NoError(t, parse(out, strings.NewReader(tc.stdin), tc.headers, tc.sorted))
			assert.JSONEq(t, tc.want, out.String())
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	out := new(bytes.Buffer)
	c := cookie.New("session", "xyz", cookie.WithPath("/"), cookie.WithHTTPOnly(true))
	require.NoError(t, format(out, c))
	assert.Equal(t, "Set-Cookie: session=\"xyz\"; Path=/; HttpOnly; \n", out.String())

	out.Reset()
	require.NoError(t, format(out, cookie.New("a", "1", cookie.WithVersion(1))))
	assert.Equal(t, "Set-Cookie2: a=\"1\"; Version=\"1\"; \n", out.String())

	assert.ErrorIs(t, format(out, new(cookie.Cookie)), ErrMissingName)
}

func TestParseExpires(t *testing.T) {
	t.Parallel()
	expires, err := parseExpires("86400")
	require.NoError(t, err)
	assert.True(t, expires.Equal(time.Unix(86400, 0)))

	expires, err = parseExpires("2023-03-01T00:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "Wed, 01 Mar 2023 00:30:00 GMT", cookie.DateString(expires))

	_, err = parseExpires("tomorrow")
	assert.Error(t, err)
}

func TestPrintConfig(t *testing.T) {
	t.Parallel()
	out := new(bytes.Buffer)
	require.NoError(t, printConfig(out, config.DefaultConfig()))
	assert.Contains(t, out.String(), "address: localhost:8080")
	assert.Contains(t, out.String(), "timeout: 1m0s")
	assert.Contains(t, out.String(), "level: info")
}
