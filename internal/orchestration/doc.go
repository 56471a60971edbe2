// Package orchestration runs frame exports: it spreads frames over a bounded
// errgroup worker pool, streams progress to a ProgressReporter and stops at
// the first failure or cancellation.
package orchestration
