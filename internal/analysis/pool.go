package analysis

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

type job struct {
	sessionID uuid.UUID
	done      chan error
}

// Pool runs analysis jobs on a fixed set of background workers. The
// triggering caller never waits: Submit hands the job to the pool and
// returns immediately. Jobs carry no cancellation handle and no
// timeout; a hung provider call hangs the worker.
type Pool struct {
	pipeline *Pipeline
	notifier Notifier
	jobs     chan job
	wg       sync.WaitGroup
}

// NewPool starts workers consuming the job queue.
func NewPool(workers int, pipeline *Pipeline, notifier Notifier) *Pool {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	p := &Pool{
		pipeline: pipeline,
		notifier: notifier,
		jobs:     make(chan job, 64),
	}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i + 1)
	}
	return p
}

// Submit enqueues a session for analysis and returns a completion
// channel that receives the job's outcome. Production callers drop the
// channel on the floor; it exists so tests can observe completion.
// Submit never blocks: analysis is best-effort, so when the queue is
// saturated the job is dropped and the outcome channel reports it.
func (p *Pool) Submit(sessionID uuid.UUID) <-chan error {
	done := make(chan error, 1)
	select {
	case p.jobs <- job{sessionID: sessionID, done: done}:
	default:
		log.Printf("analysis queue full, dropping session %s", sessionID)
		done <- fmt.Errorf("analysis: queue full, session %s dropped", sessionID)
	}
	return done
}

// Close stops accepting jobs and waits for in-flight work to finish.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
}

// worker drains the queue. Every job error is logged and swallowed
// here; nothing propagates to any client beyond the report never
// appearing.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for j := range p.jobs {
		p.notify(j.sessionID, "processing", "analysis started")

		err := p.pipeline.Run(context.Background(), j.sessionID)
		if err != nil {
			log.Printf("worker %d: analysis failed for session %s: %v", id, j.sessionID, err)
			p.notify(j.sessionID, "failed", "analysis failed")
		} else {
			log.Printf("worker %d: report created for session %s", id, j.sessionID)
			p.notify(j.sessionID, "completed", "analysis completed")
		}
		j.done <- err
	}
}

func (p *Pool) notify(sessionID uuid.UUID, status, message string) {
	if err := p.notifier.Publish(sessionID.String(), status, message); err != nil {
		log.Printf("failed to publish %s update for session %s: %v", status, sessionID, err)
	}
}
