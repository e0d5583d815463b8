package grammar_test

import (
	"testing"

	"github.com/ghettovoice/weburi/internal/grammar"
)

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"http", true},
		{"HTTPS", true},
		{"z39.50r", true},
		{"svn+ssh", true},
		{"a-b", true},
		{"1http", false},
		{"ht tp", false},
		{"http:", false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsScheme(c.str), c.want; got != want {
				t.Errorf("grammar.IsScheme(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestIsPort(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"80", true},
		{"008080", true},
		{"9x9", false},
		{"-1", false},
		{" 80", false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsPort(c.str), c.want; got != want {
				t.Errorf("grammar.IsPort(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestIsRegName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"example.com", true},
		{"EXAMPLE-abc.qwe.com", true},
		{"under_score.org", true},
		{"ex%41mple.com", true},
		{"ex%4", false},
		{"exa mple.com", false},
		{"example.com/", false},
		{"a<b>", false},
	}

	for _, c := range cases {
		t.Run(c.str, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.IsRegName(c.str), c.want; got != want {
				t.Errorf("grammar.IsRegName(%q) = %v, want %v", c.str, got, want)
			}
		})
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		from int
		stop grammar.Delims
		want int
	}{
		{"empty", "", 0, grammar.StopPath, 0},
		{"scheme colon", "http://h", 0, grammar.StopScheme, 4},
		{"scheme stops at slash", "a/b:c", 0, grammar.StopScheme, 1},
		{"hostinfo to slash", "user@h:80/p", 0, grammar.StopHostinfo, 9},
		{"hostinfo skips colon", "h:80?q", 0, grammar.StopHostinfo, 4},
		{"hostinfo to end", "h:80", 0, grammar.StopHostinfo, 4},
		{"path to query", "/a/b?q#f", 0, grammar.StopPath, 4},
		{"path to fragment", "/a/b#f?q", 0, grammar.StopPath, 4},
		{"path from offset", "h/a/b:c#f", 1, grammar.StopPath, 7},
		{"nul stops", "/a\x00/b", 0, grammar.StopPath, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Scan(c.str, c.from, c.stop), c.want; got != want {
				t.Errorf("grammar.Scan(%q, %d, %#x) = %d, want %d", c.str, c.from, c.stop, got, want)
			}
		})
	}
}

func TestDelimsOf(t *testing.T) {
	t.Parallel()

	want := map[byte]grammar.Delims{
		0:   grammar.DelimNUL,
		'#': grammar.DelimHash,
		'/': grammar.DelimSlash,
		':': grammar.DelimColon,
		'?': grammar.DelimQuestion,
	}
	for c := range 256 {
		if got := grammar.DelimsOf(byte(c)); got != want[byte(c)] {
			t.Errorf("grammar.DelimsOf(%q) = %#x, want %#x", byte(c), got, want[byte(c)])
		}
	}
}
