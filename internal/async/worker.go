package async

import (
	"context"
	"fmt"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/seyi-ajayi/examscan/constants"
	"github.com/seyi-ajayi/examscan/internal/common"
)

// Runner is the slice of the pipeline orchestrator the workers drive.
type Runner interface {
	ProcessJob(ctx context.Context, jobID uuid.UUID) error
	Retry(ctx context.Context, jobID uuid.UUID) (int, error)
	StructureSkipped(ctx context.Context, jobID uuid.UUID, provider constants.Provider, pages []int) (int, error)
	ReextractPages(ctx context.Context, jobID uuid.UUID, pages []int, provider constants.Provider) (int, error)
}

// WorkerPool consumes tasks from the stream and runs them against the
// pipeline, one task per worker at a time.
type WorkerPool struct {
	queue   *StreamQueue
	runner  Runner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	maxJobRetries int
	retryBackoff  time.Duration

	readBlock time.Duration
	staleIdle time.Duration

	wg     sync.WaitGroup
	cancel context.CancelFunc
	once   sync.Once
}

func NewWorkerPool(queue *StreamQueue, runner Runner, cfg common.QueueConfig, logger *slog.Logger) *WorkerPool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 2
	}
	timeout := cfg.TaskTimeout
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Minute
	}
	return &WorkerPool{
		queue:         queue,
		runner:        runner,
		logger:        logger,
		workers:       workers,
		timeout:       timeout,
		maxJobRetries: cfg.MaxJobRetries,
		retryBackoff:  backoff,
		readBlock:     5 * time.Second,
		// Tasks idle for twice the task timeout are presumed orphaned
		// by a dead consumer.
		staleIdle: 2 * timeout,
	}
}

// retryLater puts a failed process_job task back on the stream after a
// delay proportional to the job's retry count. The job has already been
// moved back to processing by Runner.Retry.
func (p *WorkerPool) retryLater(ctx context.Context, task Task, retries int) {
	delay := time.Duration(retries) * p.retryBackoff
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		if _, err := p.queue.Enqueue(ctx, task); err != nil {
			p.logger.Error("worker.requeue_failed",
				"job_id", task.JobID, "attempt", task.Attempt, "error", err)
			return
		}
		p.logger.Info("worker.task_requeued",
			"job_id", task.JobID, "attempt", task.Attempt, "delay", delay.String())
	}()
}

// Start launches the worker goroutines. It returns immediately.
func (p *WorkerPool) Start(ctx context.Context) {
	p.once.Do(func() {
		ctx, p.cancel = context.WithCancel(ctx)
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go func(workerID int) {
				defer p.wg.Done()
				p.logger.Info("worker.started", "worker_id", workerID)
				p.run(ctx, workerID)
				p.logger.Info("worker.stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (p *WorkerPool) run(ctx context.Context, workerID int) {
	for {
		if ctx.Err() != nil {
			return
		}
		msg, err := p.queue.read(ctx, p.readBlock)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Error("worker.read_failed", "worker_id", workerID, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Second):
			}
			continue
		}
		if msg == nil {
			// Nothing new; pick up work a crashed consumer left behind.
			msg, err = p.queue.claimStale(ctx, p.staleIdle)
			if err != nil && ctx.Err() == nil {
				p.logger.Error("worker.claim_failed", "worker_id", workerID, "error", err)
			}
			if msg == nil {
				continue
			}
		}
		p.handle(ctx, workerID, msg)
	}
}

func (p *WorkerPool) handle(ctx context.Context, workerID int, msg *message) {
	task := msg.task
	taskCtx, cancel := context.WithTimeout(ctx, p.timeout)
	taskCtx = common.WithRequestID(taskCtx, task.TraceID)

	start := time.Now()
	err := p.dispatch(taskCtx, task)
	cancel()

	if err != nil {
		p.logger.Error("worker.task_failed",
			"worker_id", workerID,
			"kind", task.Kind,
			"job_id", task.JobID,
			"trace_id", task.TraceID,
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err)
		if task.Kind == TaskProcessJob && ctx.Err() == nil && task.Attempt < p.maxJobRetries {
			if retries, rErr := p.runner.Retry(ctx, task.JobID); rErr != nil {
				p.logger.Warn("worker.auto_retry_skipped",
					"job_id", task.JobID, "error", rErr)
			} else {
				next := task
				next.Attempt++
				p.retryLater(ctx, next, retries)
			}
		}
	} else {
		p.logger.Info("worker.task_done",
			"worker_id", workerID,
			"kind", task.Kind,
			"job_id", task.JobID,
			"trace_id", task.TraceID,
			"elapsed_ms", time.Since(start).Milliseconds())
	}

	// Ack either way. Job-level retry is handled through job state, not
	// stream redelivery, so a deterministic failure cannot loop forever.
	ackCtx, ackCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer ackCancel()
	if err := p.queue.ack(ackCtx, msg.id); err != nil {
		p.logger.Error("worker.ack_failed", "worker_id", workerID, "entry_id", msg.id, "error", err)
	}
}

func (p *WorkerPool) dispatch(ctx context.Context, task Task) error {
	switch task.Kind {
	case TaskProcessJob:
		return p.runner.ProcessJob(ctx, task.JobID)
	case TaskStructureSkipped:
		_, err := p.runner.StructureSkipped(ctx, task.JobID, task.Provider, task.Pages)
		return err
	case TaskReextractPages:
		_, err := p.runner.ReextractPages(ctx, task.JobID, task.Pages, task.Provider)
		return err
	default:
		return fmt.Errorf("unknown task kind %q", task.Kind)
	}
}

// Shutdown stops the workers and waits for in-flight tasks to finish
// or the context to expire, whichever comes first.
func (p *WorkerPool) Shutdown(ctx context.Context) {
	if p.cancel != nil {
		p.cancel()
	}
	done := make(chan struct{})
	go func() { defer close(done); p.wg.Wait() }()

	select {
	case <-ctx.Done():
		p.logger.Warn("worker.shutdown_interrupted")
	case <-done:
		p.logger.Info("worker.shutdown_complete")
	}
}
