package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"portsniffer/port"
)

// ErrWorkerAborted reports that at least one worker stopped before finishing
// its ports. The returned report is then incomplete.
var ErrWorkerAborted = errors.New("scan worker aborted")

// Config contains runtime configuration for the Manager.
type Config struct {
	Target  port.Target
	Timeout time.Duration
	// Dialer overrides the network dialer. Timeout is ignored when set.
	Dialer Dialer
	// Progress receives a "<port> is open" line as soon as a port is found.
	Progress io.Writer
	Logger   *slog.Logger
}

// Manager runs one worker per configured thread over a striped port space
// and merges their findings into a sorted report.
type Manager struct {
	cfg    Config
	dialer Dialer
	log    *slog.Logger
	mu     sync.Mutex
}

// NewManager creates a new Manager with the provided config.
func NewManager(cfg Config) *Manager {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	m := &Manager{cfg: cfg, dialer: cfg.Dialer, log: cfg.Logger}
	if m.dialer == nil {
		m.dialer = &net.Dialer{Timeout: cfg.Timeout}
	}
	if m.log == nil {
		m.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return m
}

// Run scans the target and returns its open ports in ascending order.
// It returns once every worker has finished its ports.
func (m *Manager) Run(ctx context.Context) (port.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	tgt := m.cfg.Target
	if err := tgt.Validate(); err != nil {
		return nil, err
	}

	// a worker can find at most every port, so sends never block
	results := make(chan port.OpenPort, tgt.HighestPort)
	var (
		wg      sync.WaitGroup
		aborted atomic.Int32
	)

	pool, err := ants.NewPoolWithFunc(tgt.Workers, func(arg interface{}) {
		index := arg.(int)
		defer func() {
			// counted before Done so Run sees it after Wait
			if e := recover(); e != nil {
				aborted.Add(1)
				m.log.Error("worker aborted", "worker", index, "panic", e)
			}
			wg.Done()
		}()
		m.sweep(ctx, index, results)
	}, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("start worker pool: %w", err)
	}
	defer pool.Release()

	m.log.Debug("scan started", "ip", tgt.Address.String(), "workers", tgt.Workers, "highest", tgt.HighestPort)
	start := time.Now()
	for i := 0; i < tgt.Workers; i++ {
		wg.Add(1)
		if err := pool.Invoke(i); err != nil {
			wg.Done()
			aborted.Add(1)
			m.log.Error("worker not started", "worker", i, "err", err)
		}
	}

	wg.Wait()
	close(results)

	report := make(port.Report, 0, len(results))
	for r := range results {
		report = append(report, r)
	}
	report.Sort()
	m.log.Debug("scan finished", "open", len(report), "elapsed", time.Since(start))

	if n := aborted.Load(); n > 0 {
		return report, fmt.Errorf("%w: %d of %d workers", ErrWorkerAborted, n, tgt.Workers)
	}
	return report, nil
}
