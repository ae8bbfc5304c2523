package dashboard

import "fmt"

// ValidationError reports malformed input to a mutating operation. It
// is returned to the caller, never propagated past the service
// boundary.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation targeting an id absent from the
// owning collection.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// UpstreamFailure wraps an error from the external data source. It is
// surfaced unchanged to the caller; no retry happens in this layer.
type UpstreamFailure struct {
	Op  string
	Err error
}

func (e *UpstreamFailure) Error() string {
	return fmt.Sprintf("upstream %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamFailure) Unwrap() error {
	return e.Err
}

// BalanceWarning is a non-fatal reporting anomaly: summed supply and
// reported consumption disagree beyond the configured tolerance. It is
// attached to the snapshot, not returned as a failure.
type BalanceWarning struct {
	Supply      float64 `json:"supply"`
	Consumption float64 `json:"consumption"`
	Tolerance   float64 `json:"tolerance"`
}

func (w *BalanceWarning) Error() string {
	return fmt.Sprintf("energy balance off by %.2f kW (supply %.2f, consumption %.2f, tolerance %.2f)",
		w.Supply-w.Consumption, w.Supply, w.Consumption, w.Tolerance)
}
