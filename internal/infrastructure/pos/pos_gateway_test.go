package pos

import (
	"context"
	"testing"
)

func TestStubGateway_VerifyConnection(t *testing.T) {
	g := NewStubGateway()

	cases := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"short key rejected", "sk_1", false},
		{"sk prefix accepted", "sk_live_abc123", true},
		{"pk prefix accepted", "pk_live_abc123", true},
		{"sandbox key accepted", "MYTESTKEY99", true},
		{"long random key rejected", "abcdef123456", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := g.VerifyConnection(context.Background(), "square", tc.apiKey)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.want {
				t.Fatalf("VerifyConnection(%q) = %t, want %t", tc.apiKey, ok, tc.want)
			}
		})
	}
}

func TestStubGateway_ProviderName(t *testing.T) {
	g := NewStubGateway()

	if got := g.ProviderName("shift4"); got != "Shift4" {
		t.Fatalf("expected Shift4, got %q", got)
	}
	if got := g.ProviderName("toast"); got != "Toast" {
		t.Fatalf("expected capitalized fallback, got %q", got)
	}
	if got := g.ProviderName(""); got != "" {
		t.Fatalf("expected empty name, got %q", got)
	}
}

func TestStubGateway_ListProviders(t *testing.T) {
	g := NewStubGateway()

	providers := g.ListProviders()
	if len(providers) != 3 {
		t.Fatalf("expected 3 providers, got %d", len(providers))
	}
	if providers[0].ID != "shift4" || providers[1].ID != "square" || providers[2].ID != "clover" {
		t.Fatalf("unexpected providers: %+v", providers)
	}
}
