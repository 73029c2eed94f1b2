//go:build cgo

package zstd

// Default returns the engine used when the caller does not pick one:
// libzstd on cgo builds.
func Default() Engine { return Native() }
