package metrics

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/config"
)

// ClickHouseRecorder buffers events on a channel and drains it with a
// small worker pool writing to the recruiting_events table.
type ClickHouseRecorder struct {
	conn    clickhouse.Conn
	logger  *zap.Logger
	mu      sync.RWMutex
	events  chan Event
	wg      sync.WaitGroup
	closed  bool
	dropped atomic.Int64
	timeout time.Duration
}

// Connect opens and pings the warehouse connection described by cfg.
func Connect(ctx context.Context, cfg *config.Config) (clickhouse.Conn, error) {
	hostAndParams := strings.Split(cfg.ClickHouseDSN, "?")
	host := hostAndParams[0]

	conn, err := clickhouse.Open(&clickhouse.Options{
		Protocol: clickhouse.Native,
		Addr:     []string{host},
		Settings: clickhouse.Settings{
			"max_execution_time": 60,
		},
		Auth: clickhouse.Auth{
			Database: cfg.ClickHouseDatabase,
			Username: cfg.ClickHouseUsername,
			Password: cfg.ClickHousePassword,
		},
		DialTimeout:     time.Second * 30,
		MaxOpenConns:    cfg.ClickHouseMaxOpenConns,
		MaxIdleConns:    cfg.ClickHouseMaxIdleConns,
		ConnMaxLifetime: cfg.ClickHouseConnMaxLife,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create clickhouse connection: %w", err)
	}

	if err := conn.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

func NewClickHouseRecorder(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ClickHouseRecorder, error) {
	conn, err := Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	r := &ClickHouseRecorder{
		conn:    conn,
		logger:  logger,
		events:  make(chan Event, cfg.EventQueueSize),
		timeout: cfg.RecorderTimeout,
	}
	r.startWorkers(cfg.RecorderWorkers)
	return r, nil
}

func (r *ClickHouseRecorder) startWorkers(numWorkers int) {
	if numWorkers < 1 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		r.wg.Add(1)
		go func() {
			defer r.wg.Done()
			for event := range r.events {
				if err := r.insert(event); err != nil {
					r.logger.Error("failed to record event",
						zap.String("event_id", event.ID),
						zap.String("event_type", event.Type),
						zap.Error(err))
				}
			}
		}()
	}
}

// Record enqueues the event. A full queue or a closed recorder drops
// it with a counter bump instead of blocking the caller.
func (r *ClickHouseRecorder) Record(_ context.Context, event Event) {
	// The read lock keeps the channel open for the duration of the send.
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		r.dropped.Add(1)
		return
	}
	select {
	case r.events <- event:
	default:
		r.dropped.Add(1)
		r.logger.Warn("event queue full, dropping event",
			zap.String("event_type", event.Type))
	}
}

func (r *ClickHouseRecorder) insert(event Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	query := `
		INSERT INTO recruiting_events (
			id, event_type, subject_id, actor, payload, occurred_at
		) VALUES (
			?, ?, ?, ?, ?, ?
		)
	`

	if err := r.conn.Exec(ctx, query,
		event.ID,
		event.Type,
		event.SubjectID,
		event.Actor,
		event.Payload,
		event.OccurredAt,
	); err != nil {
		return fmt.Errorf("insert recruiting event: %w", err)
	}

	return nil
}

// Dropped reports how many events were discarded since startup.
func (r *ClickHouseRecorder) Dropped() int64 {
	return r.dropped.Load()
}

// stop closes the queue and waits for the workers to drain it. It
// reports whether this call performed the shutdown.
func (r *ClickHouseRecorder) stop(ctx context.Context) bool {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false
	}
	r.closed = true
	close(r.events)
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		r.logger.Warn("recorder shutdown timed out",
			zap.Int64("dropped", r.dropped.Load()))
	}
	return true
}

// Close stops accepting events, drains the queue and closes the
// connection.
func (r *ClickHouseRecorder) Close(ctx context.Context) error {
	if !r.stop(ctx) {
		return nil
	}
	return r.conn.Close()
}
