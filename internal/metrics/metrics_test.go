package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.IncAuthSuccess()
	c.IncAuthSuccess()
	c.IncAuthFailure("missing_token")
	c.IncOrderCreated()
	c.IncOrderSettled()
	c.IncPaymentIntentCreated()

	if got := testutil.ToFloat64(c.authSuccess); got != 2 {
		t.Errorf("auth success = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.authFailure.WithLabelValues("missing_token")); got != 1 {
		t.Errorf("auth failure(missing_token) = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.orderSettled); got != 1 {
		t.Errorf("orders settled = %v, want 1", got)
	}
}

func TestNoopRecorder(t *testing.T) {
	r := NewNoop()

	// Must not panic.
	r.IncAuthSuccess()
	r.IncAuthFailure("invalid_token")
	r.IncOrderCreated()
	r.IncOrderSettled()
	r.IncPaymentIntentCreated()
}
