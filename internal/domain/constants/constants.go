// Package constants holds process-wide string constants shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Ledger processing stage tags.
const (
	StageDispatch = "dispatch"
)
