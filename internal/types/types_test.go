package types_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/weburi/internal/errorutil"
	"github.com/ghettovoice/weburi/internal/types"
)

func TestRenderFlags_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		flags types.RenderFlags
		want  string
	}{
		{"none", 0, ""},
		{"single", types.RemoveQuery, "query"},
		{"several", types.RemoveScheme | types.RemoveTrailingBar | types.RemoveUserInfo, "scheme,trailing-bar,userinfo"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.flags.String(); got != c.want {
				t.Errorf("flags.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    types.RenderFlags
		wantErr error
	}{
		{"empty", "", 0, nil},
		{"single", "www", types.RemoveWWWPrefix, nil},
		{"several with spaces", " Query-Values , fragment,", types.RemoveQueryValues | types.RemoveFragment, nil},
		{"unknown", "scheme,port", 0, errorutil.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := types.ParseRenderFlags(c.input)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("types.ParseRenderFlags(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.input, err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("types.ParseRenderFlags(%q) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestRenderOptions_Has(t *testing.T) {
	t.Parallel()

	var nilOpts *types.RenderOptions
	if nilOpts.Has(types.RemoveQuery) {
		t.Error("nil options Has(RemoveQuery) = true, want false")
	}
	opts := &types.RenderOptions{Flags: types.RemoveQuery | types.RemoveFragment}
	if !opts.Has(types.RemoveQuery) {
		t.Error("opts.Has(RemoveQuery) = false, want true")
	}
	if opts.Has(types.RemoveQuery | types.RemoveScheme) {
		t.Error("opts.Has(RemoveQuery|RemoveScheme) = true, want false")
	}
}
