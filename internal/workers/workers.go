package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given background jobs. Order is preserved:
// workers start in the order they were registered.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
