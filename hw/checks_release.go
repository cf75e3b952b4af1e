//go:build release

package hw

const debugChecks = false
