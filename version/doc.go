// Package version provides version information and build metadata for blockpack.
//
// It supports both compile-time version injection via build flags and runtime
// version detection using Go's build info, so version reporting works in
// development, CI/CD, and release scenarios alike.
//
// Version Information Sources:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// The package provides multiple version formats:
//   - GetVersion(): Simple version string
//   - GetFullVersion(): Formatted version with commit and build date
//   - GetInfo(): Complete version information as a struct
//   - PrintVersion(): Human-readable version output
package version
