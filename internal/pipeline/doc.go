// Package pipeline streams FASTA records through a bounded worker pool and
// hands each result to a single collector goroutine.
//
// With Config.Ordered set, results reach the collector in record order no
// matter how many workers run.
package pipeline
