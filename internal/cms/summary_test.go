package cms

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{name: "plain", in: "<p>Hello   <em>world</em></p>", limit: 50, want: "Hello world"},
		{name: "blocks separate words", in: "<p>one</p><p>two</p>", limit: 50, want: "one two"},
		{name: "skips scripts", in: "<p>a</p><script>var x = 1;</script><p>b</p>", limit: 50, want: "a b"},
		{name: "entities decoded", in: "<p>Q&amp;A</p>", limit: 50, want: "Q&A"},
		{name: "truncates on word", in: "<p>alpha beta gamma</p>", limit: 12, want: "alpha beta…"},
		{name: "no limit", in: "<p>alpha beta gamma</p>", limit: 0, want: "alpha beta gamma"},
		{name: "empty", in: "", limit: 10, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Summary(tc.in, tc.limit))
		})
	}
}
