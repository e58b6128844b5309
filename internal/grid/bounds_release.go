//go:build !lifedebug

package grid

// checkBounds is off in release builds. Build with -tags lifedebug to check
// Get/Set coordinates and the row bands the stepper evaluates.
const checkBounds = false
