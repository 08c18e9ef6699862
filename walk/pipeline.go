package walk

import "sync"

// Stage processes one record of type T and reports whether it succeeded.
// Init/Close run once per goroutine the stage is parallelized over.
//
// Generalized from Ambrevar-demlo/pipeline.go's Stage interface, which was
// fixed to *FileRecord; this one is generic over the record type so it can
// drive concurrent album tagging instead of concurrent transcoding.
type Stage[T any] interface {
	Init()
	Run(*T) error
	Close()
}

// Pipeline runs records of type T through a sequence of Stages. A record
// that a stage's Run returns an error for is sent to the failed channel
// instead of propagating to the next stage.
//
// Grounded on Ambrevar-demlo/pipeline.go's Pipeline/Add/Close, with the
// fixed stderr logging goroutine replaced by a caller-supplied onFailed
// callback so the CLI controls its own diagnostics.
type Pipeline[T any] struct {
	output   chan *T
	failed   chan *T
	onFailed func(*T)
	failWg   sync.WaitGroup
}

// NewPipeline creates a Pipeline seeded with input, calling onFailed for
// every record any stage's Run rejects.
func NewPipeline[T any](input []*T, failedQueueSize int, onFailed func(*T)) *Pipeline[T] {
	in := make(chan *T, len(input))
	for _, r := range input {
		in <- r
	}
	close(in)

	p := &Pipeline[T]{
		output:   in,
		failed:   make(chan *T, failedQueueSize),
		onFailed: onFailed,
	}

	p.failWg.Add(1)
	go func() {
		for r := range p.failed {
			if p.onFailed != nil {
				p.onFailed(r)
			}
		}
		p.failWg.Done()
	}()

	return p
}

// Add appends a stage parallelized routineCount ways. newStage builds one
// Stage instance per goroutine so stages can hold goroutine-local state
// (an HTTP client, a Lua sandbox) without locking.
func (p *Pipeline[T]) Add(newStage func() Stage[T], routineCount int) {
	if routineCount <= 0 {
		return
	}

	out := make(chan *T, routineCount)
	var wg sync.WaitGroup
	wg.Add(routineCount)

	for i := 0; i < routineCount; i++ {
		go func(input <-chan *T) {
			defer wg.Done()
			s := newStage()
			s.Init()
			defer s.Close()
			for r := range input {
				if err := s.Run(r); err != nil {
					p.failed <- r
					continue
				}
				out <- r
			}
		}(p.output)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	p.output = out
}

// Drain consumes every record that made it through every stage, calling fn
// on each, then closes the failure-logging goroutine.
func (p *Pipeline[T]) Drain(fn func(*T)) {
	for r := range p.output {
		fn(r)
	}
	close(p.failed)
	p.failWg.Wait()
}
