package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Probe is the part of the catalog store the monitor inspects.
type Probe interface {
	Ping() error
	Size(bucket string) (int, error)
}

// Monitor periodically probes the catalog store and caches the result for health checks.
type Monitor struct {
	probe      Probe
	userBucket string
	bookBucket string

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopOnce sync.Once
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(probe Probe, userBucket, bookBucket string, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		probe:      probe,
		userBucket: userBucket,
		bookBucket: bookBucket,
		interval:   interval,
		stopCh:     make(chan struct{}),
		logger:     logger,
	}
}

// Start runs a probe immediately and then on every interval until Stop.
func (m *Monitor) Start() {
	m.refresh()
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Catalog
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	status := Status{LastCheck: time.Now()}
	if m.probe != nil {
		if err := m.probe.Ping(); err != nil {
			m.logger.Warn("catalog ping failed", zap.Error(err))
		} else {
			status.Catalog = true
			status.Users = m.count(m.userBucket)
			status.Books = m.count(m.bookBucket)
		}
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

// count returns -1 when the bucket cannot be read.
func (m *Monitor) count(bucket string) int {
	size, err := m.probe.Size(bucket)
	if err != nil {
		m.logger.Debug("bucket size check failed", zap.String("bucket", bucket), zap.Error(err))
		return -1
	}
	return size
}
