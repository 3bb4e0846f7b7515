package pos

import (
	"context"
	"log"
	"strings"

	"voicehub/internal/usecase/interfaces"
)

// StubGateway is the setup-phase POS connector. It validates credential
// shape locally and never contacts a provider: connecting a POS account is
// supported from the dashboard, submitting orders to it is not.

type StubGateway struct{}

var _ interfaces.IPOSGateway = (*StubGateway)(nil)

var providerNames = map[string]string{
	"shift4": "Shift4",
	"square": "Square",
	"clover": "Clover",
}

func NewStubGateway() *StubGateway {
	return &StubGateway{}
}

// VerifyConnection accepts keys that look like provider credentials: at
// least 8 characters with an sk_/pk_ prefix, or any sandbox key containing
// "test".
func (g *StubGateway) VerifyConnection(_ context.Context, providerID, apiKey string) (bool, error) {
	if len(apiKey) < 8 {
		log.Printf("[pos][gateway] verification rejected provider=%s reason=key-too-short", providerID)
		return false, nil
	}

	ok := strings.HasPrefix(apiKey, "sk_") ||
		strings.HasPrefix(apiKey, "pk_") ||
		strings.Contains(strings.ToLower(apiKey), "test")
	log.Printf("[pos][gateway] verification result provider=%s ok=%t", providerID, ok)
	return ok, nil
}

func (g *StubGateway) ProviderName(providerID string) string {
	if name, ok := providerNames[providerID]; ok {
		return name
	}
	if providerID == "" {
		return ""
	}
	return strings.ToUpper(providerID[:1]) + providerID[1:]
}

func (g *StubGateway) ListProviders() []interfaces.POSProvider {
	return []interfaces.POSProvider{
		{ID: "shift4", Name: "Shift4"},
		{ID: "square", Name: "Square"},
		{ID: "clover", Name: "Clover"},
	}
}
