// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// The default implementation exposes these to Prometheus.
type Recorder interface {
	// Authorization metrics
	IncAuthSuccess()
	IncAuthFailure(reason string) // reason: "missing_token", "invalid_token", "owner_mismatch", "not_admin"

	// Order lifecycle metrics
	IncOrderCreated()
	IncOrderSettled()

	// Payment provider metrics
	IncPaymentIntentCreated()
}
