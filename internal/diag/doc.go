// Package diag defines diagnostics shared by every compiler phase: codes,
// severities, the Diagnostic value, the bounded Bag container, and the
// Reporter contract phases emit through.
//
// The front end stops a compilation unit at its first error: phases report
// the diagnostic and unwind instead of resynchronizing.
package diag
