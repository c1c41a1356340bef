package dict

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConn wraps a Conn with a circuit breaker.
//
// A protocol failure leaves the underlying stream in an undefined state,
// so issuing further commands is pointless at best. Once enough operations
// have failed the breaker opens and subsequent calls fail fast with
// gobreaker.ErrOpenState without touching the wire. The breaker never
// retries or reconnects.
type BreakerConn struct {
	conn *Conn
	cb   *gobreaker.CircuitBreaker[any]
}

var _ Dictionary = (*BreakerConn)(nil)

// NewBreakerConn wraps conn with a circuit breaker built from settings.
func NewBreakerConn(conn *Conn, settings gobreaker.Settings) *BreakerConn {
	return &BreakerConn{
		conn: conn,
		cb:   gobreaker.NewCircuitBreaker[any](settings),
	}
}

// DefaultBreakerSettings returns settings that trip the breaker once 60%
// of at least 3 requests have failed.
func DefaultBreakerSettings(name string, timeout time.Duration) gobreaker.Settings {
	return gobreaker.Settings{
		Name:    name,
		Timeout: timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	}
}

func (b *BreakerConn) Define(word, database string) ([]Definition, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.conn.Define(word, database)
	})
	if err != nil {
		return nil, err
	}
	return v.([]Definition), nil
}

func (b *BreakerConn) Match(word, strategy, database string) ([]string, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.conn.Match(word, strategy, database)
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (b *BreakerConn) Databases() ([]Database, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.conn.Databases()
	})
	if err != nil {
		return nil, err
	}
	return v.([]Database), nil
}

func (b *BreakerConn) Strategies() ([]Strategy, error) {
	v, err := b.cb.Execute(func() (any, error) {
		return b.conn.Strategies()
	})
	if err != nil {
		return nil, err
	}
	return v.([]Strategy), nil
}

// State returns the breaker state (closed, half-open or open).
func (b *BreakerConn) State() gobreaker.State {
	return b.cb.State()
}

// Close closes the underlying connection.
func (b *BreakerConn) Close() {
	b.conn.Close()
}
