package observable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_SetNotifiesSubscribers(t *testing.T) {
	v := New(0)

	var got []int
	unsubscribe := v.Subscribe(func(n int) { got = append(got, n) })

	v.Set(1)
	v.Set(2)
	unsubscribe()
	v.Set(3)

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 3, v.Get())
	assert.Equal(t, 0, v.SubscriberCount())
}

func TestValue_SubscriberCanReadCurrent(t *testing.T) {
	v := New("a")

	var seen string
	v.Subscribe(func(string) { seen = v.Get() })

	v.Set("b")

	assert.Equal(t, "b", seen)
}

func TestValue_UnsubscribeIsIdempotent(t *testing.T) {
	v := New(0)
	unsubscribe := v.Subscribe(func(int) {})

	unsubscribe()
	unsubscribe()

	assert.Equal(t, 0, v.SubscriberCount())
}

func TestValue_ConcurrentSetsEndOnCurrent(t *testing.T) {
	v := New(0)

	var mu sync.Mutex
	count, last := 0, 0
	v.Subscribe(func(n int) {
		mu.Lock()
		count++
		last = n
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v.Set(n)
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.NotZero(t, count)
	assert.LessOrEqual(t, count, 50)
	assert.Equal(t, v.Get(), last)
}
