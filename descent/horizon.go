package descent

// Horizon returns the number of stages budgeted for resolution n.
//
// The divisors are empirical, fitted from experimental solves:
//
//	n ≥ 1000 → n/5
//	n ≥ 500  → n/4
//	n ≥ 50   → n/3
//	else     → n/2
func Horizon(n int) int {
	switch {
	case n >= 1000:
		return n / 5
	case n >= 500:
		return n / 4
	case n >= 50:
		return n / 3
	default:
		return n / 2
	}
}
