package uri_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/weburi/uri"
)

func mustParse(t *testing.T, s string) *uri.URI {
	t.Helper()

	u, err := uri.Parse(s)
	if err != nil {
		t.Fatalf("uri.Parse(%q) error = %v, want nil", s, err)
	}
	return u
}

func TestURI_Clone(t *testing.T) {
	t.Parallel()

	if got := (*uri.URI)(nil).Clone(); got != nil {
		t.Errorf("nil.Clone() = %+v, want nil", got)
	}

	u := mustParse(t, "http://u:p@h:81/a?b#c")
	u2 := u.Clone()
	if diff := cmp.Diff(u2, u); diff != "" {
		t.Errorf("u.Clone() = %+v, want %+v\ndiff (-got +want):\n%v", u2, u, diff)
	}
	u2.Path = "/changed"
	if u.Path != "/a" {
		t.Errorf("u.Path = %q after clone change, want %q", u.Path, "/a")
	}
}

func TestURI_IsZero(t *testing.T) {
	t.Parallel()

	if !(*uri.URI)(nil).IsZero() {
		t.Error("nil.IsZero() = false, want true")
	}
	if !mustParse(t, "").IsZero() {
		t.Error("parsed empty IsZero() = false, want true")
	}
	if mustParse(t, "?").IsZero() {
		t.Error(`parsed "?" IsZero() = true, want false`)
	}
}

func TestURI_Hostinfo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    string
		hasPort bool
	}{
		{"http://u:p@h:81/a", "u:p@h:81", true},
		{"http://u@h/a", "u@h", false},
		{"http://h:/a", "h", false},
		{"/a", "", false},
	}

	for _, c := range cases {
		u := mustParse(t, c.in)
		if got := u.Hostinfo(); got != c.want {
			t.Errorf("uri.Parse(%q).Hostinfo() = %q, want %q", c.in, got, c.want)
		}
		if got := u.HasPort(); got != c.hasPort {
			t.Errorf("uri.Parse(%q).HasPort() = %v, want %v", c.in, got, c.hasPort)
		}
	}
}

func TestURI_Redacted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"http://alice:secret@h/", "http://alice:xxxxx@h/"},
		{"http://alice@h/", "http://alice@h/"},
		{"/a", "/a"},
	}

	for _, c := range cases {
		u := mustParse(t, c.in)
		if got := u.Redacted(); got != c.want {
			t.Errorf("uri.Parse(%q).Redacted() = %q, want %q", c.in, got, c.want)
		}
		if got := u.LogValue().String(); got != c.want {
			t.Errorf("uri.Parse(%q).LogValue() = %q, want %q", c.in, got, c.want)
		}
	}
	if got := (*uri.URI)(nil).Redacted(); got != "" {
		t.Errorf("nil.Redacted() = %q, want empty", got)
	}
}

func TestURI_Format(t *testing.T) {
	t.Parallel()

	u := mustParse(t, "http://h/a?b")

	cases := []struct {
		format string
		want   string
	}{
		{"%s", "http://h/a?b"},
		{"%+s", "http://h/a?b"},
		{"%q", `"http://h/a?b"`},
		{"%v", `&{http   false h 80  /a b true  false}`},
	}

	for _, c := range cases {
		if got := fmt.Sprintf(c.format, u); got != c.want {
			t.Errorf("fmt.Sprintf(%q, u) = %q, want %q", c.format, got, c.want)
		}
	}
}

func TestURI_Equal(t *testing.T) {
	t.Parallel()

	u := mustParse(t, "http://Example.com/a?b#c")

	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"same", u, true},
		{"value", *u, true},
		{"case-insensitive scheme and host", mustParse(t, "HTTP://example.COM/a?b#c"), true},
		{"path case", mustParse(t, "http://Example.com/A?b#c"), false},
		{"query presence", mustParse(t, "http://Example.com/a#c"), false},
		{"explicit default port", mustParse(t, "http://Example.com:80/a?b#c"), false},
		{"nil", (*uri.URI)(nil), false},
		{"other type", "http://Example.com/a?b#c", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := u.Equal(c.val); got != c.want {
				t.Errorf("u.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}

	if !(*uri.URI)(nil).Equal((*uri.URI)(nil)) {
		t.Error("nil.Equal(nil) = false, want true")
	}
}

func TestURI_MarshalText(t *testing.T) {
	t.Parallel()

	type doc struct {
		Link *uri.URI `json:"link"`
	}

	data, err := json.Marshal(doc{Link: mustParse(t, "http://h:8080/a")})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v, want nil", err)
	}
	if got, want := string(data), `{"link":"http://h:8080/a"}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}

	var d doc
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatalf("json.Unmarshal() error = %v, want nil", err)
	}
	want := &uri.URI{Scheme: "http", Hostname: "h", Port: 8080, PortText: "8080", Path: "/a"}
	if diff := cmp.Diff(d.Link, want); diff != "" {
		t.Errorf("json.Unmarshal() = %+v, want %+v\ndiff (-got +want):\n%v", d.Link, want, diff)
	}
}

func TestURI_UnmarshalText_Error(t *testing.T) {
	t.Parallel()

	u := mustParse(t, "http://h/a")
	err := u.UnmarshalText([]byte("http://h:bad/"))
	if !errors.Is(err, uri.ErrInvalidPort) {
		t.Errorf("u.UnmarshalText() error = %v, want %v", err, uri.ErrInvalidPort)
	}
	if !u.IsZero() {
		t.Errorf("u = %+v after failed unmarshal, want zero", u)
	}
}

func TestURI_QueryValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want uri.Values
	}{
		{"/a", nil},
		{"/a?", uri.Values{}},
		{"/a?x=1&x=2&Y=a%20b&flag&&=v", uri.Values{"x": {"1", "2"}, "Y": {"a b"}, "flag": {""}, "": {"v"}}},
		{"/a?k%3D=v%3D1", uri.Values{"k=": {"v=1"}}},
	}

	for _, c := range cases {
		got := mustParse(t, c.in).QueryValues()
		if diff := cmp.Diff(got, c.want); diff != "" {
			t.Errorf("uri.Parse(%q).QueryValues() = %v, want %v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
		}
	}

	vals := mustParse(t, "/?a=1&a=2").QueryValues()
	if v, ok := vals.First("a"); !ok || v != "1" {
		t.Errorf("vals.First(a) = %q, %v, want %q, true", v, ok, "1")
	}
	if _, ok := vals.First("A"); ok {
		t.Error("vals.First(A) ok = true, want false")
	}
	if !vals.Has("a") || vals.Has("b") {
		t.Errorf("vals.Has() mismatch for %v", vals)
	}
	if diff := cmp.Diff(vals.Get("a"), []string{"1", "2"}); diff != "" {
		t.Errorf("vals.Get(a)\ndiff (-got +want):\n%v", diff)
	}
}

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	f, err := uri.ParseRenderFlags("www, query-values")
	if err != nil {
		t.Fatalf("uri.ParseRenderFlags() error = %v, want nil", err)
	}
	if want := uri.RemoveWWWPrefix | uri.RemoveQueryValues; f != want {
		t.Errorf("uri.ParseRenderFlags() = %v, want %v", f, want)
	}
	if _, err := uri.ParseRenderFlags("bogus"); err == nil {
		t.Error("uri.ParseRenderFlags(bogus) error = nil, want error")
	}
}
