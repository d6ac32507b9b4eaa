// Package workers runs background jobs: the batch runner that executes a
// YAML job file against the remote API, and the Workers aggregate that runs
// several workers under one context.
package workers

import "context"

// Worker is implemented by any background job. Run blocks until the work is
// done or ctx is canceled.
type Worker interface {
	Run(ctx context.Context) error
}
