package adapters

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"check-compromised/internal/types"
)

func TestWriteReport(t *testing.T) {
	tests := []struct {
		name   string
		result types.MatchResult
		want   string
	}{
		{
			name:   "no matches",
			result: types.MatchResult{},
			want:   "No compromised packages found.\n",
		},
		{
			name: "single match",
			result: types.MatchResult{Matches: []types.InstalledPackage{
				{Name: "left-pad", Version: "1.3.0", Raw: "\"name\": \"left-pad\"\n\"version\": \"1.3.0\""},
			}},
			want: "Compromised packages found:\n" +
				"\n" +
				"- left-pad@1.3.0\n" +
				"\"name\": \"left-pad\"\n" +
				"\"version\": \"1.3.0\"\n" +
				"\n",
		},
		{
			name: "two matches in scan order",
			result: types.MatchResult{Matches: []types.InstalledPackage{
				{Name: "debug", Version: "4.4.2", Raw: "n1\nv1"},
				{Name: "chalk", Version: "5.6.1", Raw: "n2\nv2"},
			}},
			want: "Compromised packages found:\n\n- debug@4.4.2\nn1\nv1\n\n- chalk@5.6.1\nn2\nv2\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, NewTextReportAdapter().WriteReport(&out, tt.result))
			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Fatalf("unexpected report (-want +got):\n%s", diff)
			}
		})
	}
}
