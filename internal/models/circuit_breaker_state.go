package models

// CircuitBreakerState is a breaker's position. The numeric value is exported
// as the circuit_breaker_state gauge.
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half-open"
	default:
		return "unknown"
	}
}
