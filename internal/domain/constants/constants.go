// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)

// Cookie names carrying the custom session tokens, scoped per account kind.
const (
	AdminTokenCookie    = "admin_token"
	SupplierTokenCookie = "supplier_token"
	BuyerTokenCookie    = "auth_token"
)
