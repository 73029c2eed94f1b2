//go:build !cgo

package zstd

// Default returns the engine used when the caller does not pick one:
// the pure-Go engine on builds without cgo.
func Default() Engine { return Pure() }
