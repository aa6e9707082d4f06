package stream

import (
	"runtime"
	"sync"

	"github.com/qrlsm2/streambench/internal/hostinfo"
)

// phase is one fork-join parallel operation run across the pool.
type phase int

const (
	phaseAllocate phase = iota
	phaseInit
	phaseDouble
	phaseCopy
	phaseScale
	phaseAdd
	phaseTriad
)

func kernelPhase(k Kernel) phase {
	return phaseCopy + phase(k)
}

// worker owns one partition: three equal-length buffers nothing else ever
// writes. All fields are written by the worker goroutine only; the
// fork-join WaitGroup orders those writes before the orchestrator's reads.
type worker struct {
	id      int
	a, b, c []Element

	// cpu is the logical CPU observed after locking the OS thread, -1
	// when the platform gave no answer. Diagnostic only.
	cpu int

	ops chan phase
}

func (w *worker) loop(p *Pool) {
	defer p.exited.Done()

	// The goroutine keeps its OS thread for the pool's lifetime so the
	// observed-CPU diagnostic stays meaningful and scheduling stays flat
	// across kernels.
	runtime.LockOSThread()
	w.cpu = hostinfo.ObservedCPU()

	for op := range w.ops {
		w.step(op, p.arraySize)
		p.join.Done()
	}
}

func (w *worker) step(op phase, n int64) {
	switch op {
	case phaseAllocate:
		w.a = make([]Element, n)
		w.b = make([]Element, n)
		w.c = make([]Element, n)
	case phaseInit:
		for i := range w.a {
			w.a[i] = 1.0
			w.b[i] = 2.0
			w.c[i] = 0.0
		}
	case phaseDouble:
		doublePass(w.a)
	default:
		Kernel(op - phaseCopy).run(w.a, w.b, w.c)
	}
}

// Pool is the fixed set of measurement workers. It is created once per run,
// executes every parallel phase fork-join style, and must be closed to
// release its OS threads.
type Pool struct {
	arraySize int64
	workers   []*worker
	join      sync.WaitGroup
	exited    sync.WaitGroup
}

// NewPool starts one OS-thread-locked goroutine per worker and has each
// allocate its buffer triple into its own slot before returning. Partition
// writes therefore exist, and are visible, before any timing begins.
func NewPool(workers int, arraySize int64) *Pool {
	p := &Pool{
		arraySize: arraySize,
		workers:   make([]*worker, workers),
	}
	p.exited.Add(workers)
	for id := range p.workers {
		w := &worker{id: id, cpu: -1, ops: make(chan phase)}
		p.workers[id] = w
		go w.loop(p)
	}
	p.run(phaseAllocate)
	return p
}

// run executes one phase on every worker and blocks until the last one
// finishes. The join is the barrier the timing contract depends on: the
// caller's next clock read happens after every partition write of this
// phase.
func (p *Pool) run(op phase) {
	p.join.Add(len(p.workers))
	for _, w := range p.workers {
		w.ops <- op
	}
	p.join.Wait()
}

// Initialize fills every partition with the starting values A=1, B=2, C=0.
// Each worker touches only its own buffers, so first-touch placement lands
// where the kernels will run.
func (p *Pool) Initialize() {
	p.run(phaseInit)
}

// RunKernel executes one kernel across all partitions, returning only after
// every worker finished its slice.
func (p *Pool) RunKernel(k Kernel) {
	p.run(kernelPhase(k))
}

// DoublePass runs the untimed A=2*A sweep used for the duration advisory.
func (p *Pool) DoublePass() {
	p.run(phaseDouble)
}

// Close shuts every worker down and waits for the goroutines to exit.
func (p *Pool) Close() {
	for _, w := range p.workers {
		close(w.ops)
	}
	p.exited.Wait()
}

// Workers returns the pool size.
func (p *Pool) Workers() int {
	return len(p.workers)
}

// ArraySize returns the per-worker buffer length.
func (p *Pool) ArraySize() int64 {
	return p.arraySize
}

// CPUs lists the logical CPU each worker observed at startup, -1 where the
// platform could not say. Diagnostic only; never affects measurement.
func (p *Pool) CPUs() []int {
	cpus := make([]int, len(p.workers))
	for i, w := range p.workers {
		cpus[i] = w.cpu
	}
	return cpus
}

// Buffers exposes worker t's partition (A, B, C). Reads are safe between
// phases; callers must not write while a phase is running.
func (p *Pool) Buffers(t int) (a, b, c []Element) {
	w := p.workers[t]
	return w.a, w.b, w.c
}
