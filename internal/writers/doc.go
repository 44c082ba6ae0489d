// Package writers turns report rows into files.
//
// Design:
//   - Each report is fed through a channel to one writer goroutine.
//   - A line that fails to write is logged and skipped; the run goes on.
//   - Reports are staged under a temporary name and renamed on Commit, so a
//     failed run leaves no partial file behind.
package writers
