package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap/zapcore"
)

var errCoolingDown = errors.New("logstash: reconnect cooling down")

// LogstashConfig describes the TCP input entries are shipped to. Zero
// durations fall back to the defaults below.
type LogstashConfig struct {
	Addr          string
	DialTimeout   time.Duration
	WriteTimeout  time.Duration
	RetryInterval time.Duration
}

const (
	defaultDialTimeout   = 2 * time.Second
	defaultWriteTimeout  = time.Second
	defaultRetryInterval = 5 * time.Second
)

// LogstashSink is a zapcore.WriteSyncer over one long-lived TCP connection.
// While Logstash is unreachable entries are counted and dropped, and Write
// still reports success so the logger never fails a request.
type LogstashSink struct {
	cfg     LogstashConfig
	dropped atomic.Uint64

	mu       sync.Mutex
	conn     net.Conn
	retryAt  time.Time
	isClosed bool
}

func NewLogstashSink(cfg LogstashConfig) (*LogstashSink, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}
	if cfg.RetryInterval <= 0 {
		cfg.RetryInterval = defaultRetryInterval
	}
	return &LogstashSink{cfg: cfg}, nil
}

func (s *LogstashSink) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	line := p
	if p[len(p)-1] != '\n' {
		line = append(append(make([]byte, 0, len(p)+1), p...), '\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return 0, io.ErrClosedPipe
	}
	if err := s.connectLocked(time.Now()); err != nil {
		s.dropped.Add(1)
		return len(p), nil
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if _, err := s.conn.Write(line); err != nil {
		s.dropped.Add(1)
		s.disconnectLocked()
		s.retryAt = time.Now().Add(s.cfg.RetryInterval)
	}
	return len(p), nil
}

// Sync is a no-op; entries are written straight to the socket.
func (s *LogstashSink) Sync() error {
	return nil
}

// Dropped reports how many entries never reached Logstash.
func (s *LogstashSink) Dropped() uint64 {
	return s.dropped.Load()
}

func (s *LogstashSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.isClosed {
		return nil
	}
	s.isClosed = true
	return s.disconnectLocked()
}

func (s *LogstashSink) connectLocked(now time.Time) error {
	if s.conn != nil {
		return nil
	}
	if now.Before(s.retryAt) {
		return errCoolingDown
	}
	conn, err := net.DialTimeout("tcp", s.cfg.Addr, s.cfg.DialTimeout)
	if err != nil {
		s.retryAt = now.Add(s.cfg.RetryInterval)
		return err
	}
	s.conn = conn
	s.retryAt = time.Time{}
	return nil
}

func (s *LogstashSink) disconnectLocked() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

var _ zapcore.WriteSyncer = (*LogstashSink)(nil)
