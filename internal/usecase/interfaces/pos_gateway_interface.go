package interfaces

import "context"

// POSProvider describes a provider the dashboard can offer for connection.
type POSProvider struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IPOSGateway abstracts POS provider connections (Shift4, Square, Clover).
//
// The current implementation is a setup-phase stub: it validates key shape
// locally and never calls a provider. Order submission to a live POS is out
// of scope, which is why confirmed orders report provider "none".
type IPOSGateway interface {
	VerifyConnection(ctx context.Context, providerID, apiKey string) (bool, error)
	ProviderName(providerID string) string
	ListProviders() []POSProvider
}
