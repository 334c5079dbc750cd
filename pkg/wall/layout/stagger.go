package layout

import "time"

// MaxStagger caps the entrance delay so large walls do not take forever to appear.
const MaxStagger = 2 * time.Second

// stagger returns the entrance delay for index i with the given per-item step.
func stagger(i int, step time.Duration) time.Duration {
	return min(time.Duration(i)*step, MaxStagger)
}
