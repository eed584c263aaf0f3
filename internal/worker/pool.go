// Package worker implements the buffered worker pool that decouples HTTP
// ingestion from ClickHouse writes: submissions queue in memory, workers
// convert them to participant rows and batch-insert, and shutdown flushes
// whatever is still queued.
package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/devbm7/deadshot-stats/internal/models"
	"github.com/devbm7/deadshot-stats/internal/stats"
)

var (
	submissionsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deadshot_submissions_ingested_total",
		Help: "Total number of match submissions accepted into the queue",
	})

	submissionsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deadshot_submissions_processed_total",
		Help: "Total number of match submissions written to the store",
	})

	submissionsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deadshot_submissions_failed_total",
		Help: "Total number of match submissions that failed processing",
	})

	submissionsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deadshot_submissions_dropped_total",
		Help: "Total number of match submissions dropped during shutdown",
	})

	rowsInserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "deadshot_rows_inserted_total",
		Help: "Total number of participant rows inserted",
	})

	poolQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "deadshot_worker_queue_depth",
		Help: "Current depth of the ingestion queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "deadshot_batch_insert_duration_seconds",
		Help:    "Duration of batch inserts to the store",
		Buckets: prometheus.DefBuckets,
	})
)

// MatchInserter is the store surface the pool writes to.
type MatchInserter interface {
	InsertRows(ctx context.Context, rows []models.MatchRow) error
	NextMatchID(ctx context.Context) (int64, error)
}

// CatalogRecorder keeps the dropdown catalogs in sync with accepted data.
type CatalogRecorder interface {
	RecordSubmission(ctx context.Context, players, maps, weapons []string)
}

// Invalidator drops cached aggregates after new data lands.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// Job is one queued match submission with its server-assigned identifiers.
type Job struct {
	SubmissionID uuid.UUID
	Submission   models.MatchSubmission
	Received     time.Time
}

// PoolConfig configures the worker pool.
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Store         MatchInserter
	Catalog       CatalogRecorder
	Cache         Invalidator
	Logger        *zap.SugaredLogger
}

// Pool fans queued submissions out to workers that batch-insert rows.
// Match ids come from a single in-memory allocator seeded from the store at
// startup, so concurrent batches never collide.
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	nextMatchID atomic.Int64
}

func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger,
	}
}

// Start seeds the match id allocator and launches the workers.
func (p *Pool) Start(ctx context.Context) error {
	next, err := p.config.Store.NextMatchID(ctx)
	if err != nil {
		return err
	}
	p.nextMatchID.Store(next)

	p.ctx, p.cancel = context.WithCancel(ctx)
	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	go p.reportQueueDepth()

	p.logger.Infow("worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
		"nextMatchID", next,
	)
	return nil
}

// Stop shuts the pool down, flushing every queued submission first.
func (p *Pool) Stop() {
	p.logger.Info("stopping worker pool")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("worker pool stopped")
}

// Enqueue queues an already-validated submission. It returns the assigned
// submission id, or false when the pool is shutting down or saturated.
func (p *Pool) Enqueue(sub models.MatchSubmission) (uuid.UUID, bool) {
	job := Job{
		SubmissionID: uuid.New(),
		Submission:   sub,
		Received:     time.Now(),
	}

	// The queue channel closes during Stop; treat a send on it as a drop.
	ok := false
	func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Warnw("enqueue on stopped pool", "submission", job.SubmissionID)
			}
		}()
		select {
		case p.jobQueue <- job:
			ok = true
		default:
		}
	}()

	if !ok {
		submissionsDropped.Inc()
		return uuid.Nil, false
	}
	submissionsIngested.Inc()
	return job.SubmissionID, true
}

// QueueDepth returns the current queue size.
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			poolQueueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		start := time.Now()
		if err := p.processBatch(batch); err != nil {
			p.logger.Errorw("batch processing failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			submissionsFailed.Add(float64(len(batch)))
		} else {
			submissionsProcessed.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())
		batch = batch[:0]
	}

	for {
		select {
		case job, open := <-p.jobQueue:
			if !open {
				flush()
				return
			}
			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()

		case <-p.ctx.Done():
			// Keep draining; the closed channel ends the loop after the
			// final flush.
			for job := range p.jobQueue {
				batch = append(batch, job)
				if len(batch) >= p.config.BatchSize {
					flush()
				}
			}
			flush()
			return
		}
	}
}

// processBatch converts queued submissions into participant rows and writes
// them in one insert. Each submission becomes one match: a fresh id and a
// timezone-normalized datetime shared by all of its rows.
func (p *Pool) processBatch(batch []Job) error {
	ctx := context.Background()

	var rows []models.MatchRow
	playerSet := make(map[string]struct{})
	mapSet := make(map[string]struct{})
	weaponSet := make(map[string]struct{})

	for _, job := range batch {
		matchID := p.nextMatchID.Add(1) - 1
		dt := stats.Naive(job.Submission.Datetime)
		for i := range job.Submission.Rows {
			sr := &job.Submission.Rows[i]
			rows = append(rows, sr.ToRow(matchID, dt))
			playerSet[sr.PlayerName] = struct{}{}
			if sr.MapName != "" {
				mapSet[sr.MapName] = struct{}{}
			}
			if sr.Weapon != "" {
				weaponSet[sr.Weapon] = struct{}{}
			}
		}
	}

	if err := p.config.Store.InsertRows(ctx, rows); err != nil {
		return err
	}
	rowsInserted.Add(float64(len(rows)))

	if p.config.Catalog != nil {
		p.config.Catalog.RecordSubmission(ctx, setToSlice(playerSet), setToSlice(mapSet), setToSlice(weaponSet))
	}
	if p.config.Cache != nil {
		p.config.Cache.Invalidate(ctx)
	}
	return nil
}

func setToSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
