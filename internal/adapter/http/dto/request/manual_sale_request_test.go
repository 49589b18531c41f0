package request

import "testing"

func TestManualSaleRequest_ResolveSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty defaults to unknown", in: "", want: SourceUnknown},
		{name: "whitespace defaults to unknown", in: "   ", want: SourceUnknown},
		{name: "direct call kept", in: SourceDirectCall, want: SourceDirectCall},
		{name: "word of mouth kept", in: SourceWordOfMouth, want: SourceWordOfMouth},
		{name: "custom label trimmed", in: "  TikTok  ", want: "TikTok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ManualSaleRequest{Source: tt.in}
			if got := r.ResolveSource(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
