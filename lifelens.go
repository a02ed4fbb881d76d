// ABOUTME: Main lifelens package providing version information and package documentation
// ABOUTME: This is the root package for the object lifetime report tool

// Package lifelens reads unreachability logs produced by lifetime analysis
// of execution traces. Each record says that a heap object became
// unreachable at a source location and trace timestamp. The heap package
// holds the record type, sourcemap resolves raw trace locations and report
// reads and writes persisted logs.
package lifelens

// Version is the semantic version of the lifelens tool
const Version = "0.1.0-dev"
