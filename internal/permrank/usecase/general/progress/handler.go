package progress

import (
	"sync"

	"github.com/tarantool/permrank/internal/permrank/usecase"
)

// Handler type is storage for progress of one task.
type Handler struct {
	progress usecase.Progress
	mutex    *sync.RWMutex
}

func NewHandler() *Handler {
	return &Handler{
		mutex: &sync.RWMutex{},
	}
}

// Create function resets progress with the total count.
func (p *Handler) Create(total uint64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.progress = usecase.Progress{
		Done:  0,
		Total: total,
	}
}

// Add function adds selected value to progress.
func (p *Handler) Add(done uint64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.progress.Done += done
}

// Get returns saved progress.
func (p *Handler) Get() usecase.Progress {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.progress
}
