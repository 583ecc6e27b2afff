package cookie

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		headers []string
		want    map[string]string
	}{
		{"single", []string{"a=1"}, map[string]string{"a": "1"}},
		{"multiple", []string{"a=1; b=2"}, map[string]string{"a": "1", "b": "2"}},
		{"quoted semicolon", []string{`a="hello; world"`}, map[string]string{"a": "hello; world"}},
		{"last wins", []string{"a=1; a=2"}, map[string]string{"a": "2"}},
		{"leading whitespace", []string{" a=1"}, map[string]string{"a": "1"}},
		{"leading tab", []string{"\t\ta=1;\tb=2"}, map[string]string{"a": "1", "b": "2"}},
		{"trailing name without value", []string{"a=1;b"}, map[string]string{"a": "1"}},
		{"unterminated quote", []string{`a="unterminated`}, map[string]string{}},
		{"trailing semicolon", []string{"a=1;"}, map[string]string{"a": "1"}},
		{"empty value", []string{"a=; b="}, map[string]string{"a": "", "b": ""}},
		{"empty name", []string{"=1; b=2"}, map[string]string{"b": "2"}},
		{"value contains equals", []string{"a=b=c"}, map[string]string{"a": "b=c"}},
		{"no trimming", []string{"a=1 ; b =2"}, map[string]string{"a": "1 ", "b ": "2"}},
		{"quote inside value", []string{`a=x"y"`}, map[string]string{"a": "y"}},
		{"separator after quoted value", []string{`a="x"; b=2`}, map[string]string{"a": "x", "; b": "2"}},
		{"multiple headers", []string{"a=1", "b=2; a=3"}, map[string]string{"a": "3", "b": "2"}},
		{"empty header", []string{""}, map[string]string{}},
		{"no headers", nil, map[string]string{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cookies := Parse(tc.headers...)
			got := make(map[string]string, cookies.Len())
			for _, c := range cookies.All() {
				got[c.Name] = c.Value
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseOrder(t *testing.T) {
	t.Parallel()
	cookies := Parse("b=1; a=2; c=3", "a=4")

	assert.Equal(t, []string{"b", "a", "c"}, cookies.Names())
	assert.Equal(t, []string{"a", "b", "c"}, cookies.Sorted())
	assert.Equal(t, "4", cookies.Value("a"))
	assert.True(t, cookies.Has("c"))
	assert.False(t, cookies.Has("d"))
	assert.Equal(t, "", cookies.Value("d"))
}

func TestParseAllReturnsCopies(t *testing.T) {
	t.Parallel()
	cookies := Parse("a=1")

	all := cookies.All()
	all[0].Value = "changed"

	assert.Equal(t, "1", cookies.Value("a"))
}

func TestCookiesMarshalJSON(t *testing.T) {
	t.Parallel()
	bytes, err := Parse("z=1; a=2").MarshalJSON()
	assert.NoError(t, err)
	assert.JSONEq(t, `[{"name":"z","value":"1"},{"name":"a","value":"2"}]`, string(bytes))

	bytes, err = Parse().MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(bytes))
}

func TestNilCookies(t *testing.T) {
	t.Parallel()
	var cookies *Cookies

	assert.Equal(t, 0, cookies.Len())
	assert.Nil(t, cookies.Names())
	assert.Nil(t, cookies.All())
	_, ok := cookies.Get("a")
	assert.False(t, ok)
}

func FuzzParse(f *testing.F) {
	for _, seed := range []string{
		"a=1", "a=1; b=2", `a="hello; world"`, `a="`, "=", ";", `"`,
		" \t", "a=1;b", `a=x"y"; b="z`, strings.Repeat(`=;"`, 8),
	} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, header string) {
		cookies := Parse(header)
		names := cookies.Names()
		if len(names) != cookies.Len() {
			t.Fatalf("names %d, len %d", len(names), cookies.Len())
		}
		seen := make(map[string]struct{}, len(names))
		for _, name := range names {
			if name == "" {
				t.Fatal("parsed cookie without a name")
			}
			if _, dup := seen[name]; dup {
				t.Fatalf("duplicate name %q", name)
			}
			seen[name] = struct{}{}
		}
	})
}
