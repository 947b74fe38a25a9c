// Package constants holds configuration values that several layers compare against.
package constants

const (
	// EnvDevelop is the env value that relaxes production-only checks.
	EnvDevelop = "develop"

	// PubSubProviderLocal posts events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderNone disables event publishing.
	PubSubProviderNone = "none"
)
