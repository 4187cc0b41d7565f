package countdown

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type collector struct {
	mu     sync.Mutex
	values []domain.Countdown
}

func (c *collector) add(v domain.Countdown) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, v)
}

func (c *collector) all() []domain.Countdown {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Countdown(nil), c.values...)
}

func (c *collector) waitFor(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return len(c.all()) >= n }, time.Second, 5*time.Millisecond)
}

func TestTicker_TerminatesAfterExpiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ticker := New(clock, time.Second, newTestLogger(t))
	col := &collector{}
	ticker.Subscribe(col.add)

	ticker.Start(clock.Now().Add(2500 * time.Millisecond))
	col.waitFor(t, 1)

	clock.Advance(time.Second)
	col.waitFor(t, 2)
	clock.Advance(time.Second)
	col.waitFor(t, 3)
	clock.Advance(time.Second)
	col.waitFor(t, 4)

	require.Eventually(t, func() bool { return !ticker.Running() }, time.Second, 5*time.Millisecond)

	clock.Advance(5 * time.Second)
	time.Sleep(20 * time.Millisecond)

	values := col.all()
	require.Len(t, values, 4)
	assert.Equal(t, domain.Countdown{Seconds: 2}, values[0])
	assert.Equal(t, domain.Countdown{Seconds: 1}, values[1])
	assert.Equal(t, domain.Countdown{}, values[2])
	assert.Equal(t, domain.Countdown{Expired: true}, values[3])
}

func TestTicker_PastTargetPublishesExpiredOnly(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ticker := New(clock, time.Second, newTestLogger(t))
	col := &collector{}
	ticker.Subscribe(col.add)

	ticker.Start(clock.Now().Add(-time.Hour))

	assert.False(t, ticker.Running())
	assert.Equal(t, []domain.Countdown{{Expired: true}}, col.all())
}

func TestTicker_StopHaltsPublishing(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ticker := New(clock, time.Second, newTestLogger(t))
	col := &collector{}
	ticker.Subscribe(col.add)

	ticker.Start(clock.Now().Add(24 * time.Hour))
	require.True(t, ticker.Running())

	ticker.Stop()
	clock.Advance(10 * time.Second)
	time.Sleep(20 * time.Millisecond)

	assert.False(t, ticker.Running())
	assert.Len(t, col.all(), 1)
	assert.Equal(t, int64(1), col.all()[0].Days)
}

func TestTicker_RestartReplacesRunningCountdown(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ticker := New(clock, time.Second, newTestLogger(t))

	ticker.Start(clock.Now().Add(48 * time.Hour))
	ticker.Start(clock.Now().Add(90 * time.Minute))

	assert.Equal(t, domain.Countdown{Hours: 1, Minutes: 30}, ticker.Current())

	clock.Advance(time.Second)
	require.Eventually(t, func() bool {
		return ticker.Current() == domain.Countdown{Hours: 1, Minutes: 29, Seconds: 59}
	}, time.Second, 5*time.Millisecond)

	ticker.Stop()
}
