// Package version provides version information and build metadata for mdfzip.
//
// This package handles version reporting for the mdfzip application, supporting
// both compile-time version injection via build flags and runtime version
// detection using Go's build info.
//
// Version Information Sources:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// The reported version is also recorded in every resume-ledger entry so an
// archive can be traced back to the tool build that produced it.
package version
