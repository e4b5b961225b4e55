// Package workers runs the background jobs of the client.
//
// A [PeriodicWorker] runs one task on a fixed interval. [Workers] runs a set
// of workers side by side until the context ends.
package workers

import "context"

// Worker is a long-running background job.
//
// Run blocks until ctx ends and returns nil then. A non-nil error means the
// worker cannot go on and stops its siblings in a [Workers] group.
type Worker interface {
	Run(ctx context.Context) error
}
