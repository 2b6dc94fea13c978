// Package workers runs the client's background jobs in a unified way.
// It defines the Worker interface and a Workers aggregate; the only
// production worker today is the periodic sync job, which keeps the local
// checkpoint warm between explicit operations.
package workers

// Worker is implemented by any background job of the client.
//
// Implementations are expected to return quickly from Run and do their
// work in goroutines they manage themselves; stopping is the job's own
// concern (the sync job, for example, exposes Stop).
type Worker interface {
	Run()
}
