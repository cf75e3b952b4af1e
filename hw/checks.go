//go:build !release

package hw

// Internal consistency checks (address overflow, redundant ADC computation).
// Build with -tags release to compile them out.
const debugChecks = true
