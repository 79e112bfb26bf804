package galaxy

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum particle count to use parallel processing.
// Below this, single-threaded is faster due to goroutine overhead.
const parallelThreshold = 4096

// workChunk represents a range of particles for a worker to process.
type workChunk struct {
	start, end int
	kernel     func(i0, i1 int)
}

// WorkerPool runs per-particle kernels over index ranges with persistent
// worker goroutines. Both the placement and update kernels are free of
// cross-particle reads, so chunks never need finer synchronization than the
// completion barrier at the end of each dispatch.
type WorkerPool struct {
	numWorkers int

	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup // tracks active workers
	running  bool           // true if workers are running
}

// NewWorkerPool creates a pool sized to GOMAXPROCS. Workers start lazily on
// the first dispatch.
func NewWorkerPool() *WorkerPool {
	return &WorkerPool{numWorkers: runtime.GOMAXPROCS(0)}
}

// start launches persistent worker goroutines.
func (p *WorkerPool) start() {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// Stop signals all workers to exit and waits for them.
func (p *WorkerPool) Stop() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, processing chunks until stopped.
func (p *WorkerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			chunk.kernel(chunk.start, chunk.end)
			p.doneChan <- struct{}{}
		}
	}
}

// Run splits [0, n) into one chunk per worker, dispatches them, and blocks
// until every chunk has completed.
func (p *WorkerPool) Run(n int, kernel func(i0, i1 int)) {
	if n <= 0 {
		return
	}
	if !p.running {
		p.start()
	}

	chunkSize := (n + p.numWorkers - 1) / p.numWorkers

	chunksDispatched := 0
	for w := 0; w < p.numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		p.workChan <- workChunk{start: start, end: end, kernel: kernel}
		chunksDispatched++
	}

	for i := 0; i < chunksDispatched; i++ {
		<-p.doneChan
	}
}

// runChunked dispatches to the pool for large populations and runs inline
// otherwise. A nil pool always runs inline.
func runChunked(pool *WorkerPool, n int, kernel func(i0, i1 int)) {
	if n <= 0 {
		return
	}
	if pool == nil || n < parallelThreshold {
		kernel(0, n)
		return
	}
	pool.Run(n, kernel)
}
