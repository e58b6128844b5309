//go:build lifedebug

package grid

const checkBounds = true
