package notifier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch chan Event) (Event, bool) {
	t.Helper()
	select {
	case ev := <-ch:
		return ev, true
	case <-time.After(100 * time.Millisecond):
		return "", false
	}
}

func TestNotifier_SubscribeUnsubscribe(t *testing.T) {
	n := New()

	ch := n.Subscribe("v1")
	require.NotNil(t, ch)
	assert.Equal(t, 1, n.Len())

	n.Unsubscribe(ch)
	assert.Equal(t, 0, n.Len())

	_, open := <-ch
	assert.False(t, open, "unsubscribed channel is closed")

	assert.NotPanics(t, func() { n.Unsubscribe(ch) }, "double unsubscribe is a no-op")
}

func TestNotifier_BroadcastReachesEveryone(t *testing.T) {
	n := New()
	ch1 := n.Subscribe("v1")
	ch2 := n.Subscribe("v2")
	defer n.Unsubscribe(ch1)
	defer n.Unsubscribe(ch2)

	n.Broadcast(Feed)

	ev, ok := receive(t, ch1)
	require.True(t, ok, "ch1 did not receive broadcast")
	assert.Equal(t, Feed, ev)
	ev, ok = receive(t, ch2)
	require.True(t, ok, "ch2 did not receive broadcast")
	assert.Equal(t, Feed, ev)
}

func TestNotifier_NotifyTargetsVisitor(t *testing.T) {
	n := New()
	tab1 := n.Subscribe("v1")
	tab2 := n.Subscribe("v1")
	other := n.Subscribe("v2")
	defer n.Unsubscribe(tab1)
	defer n.Unsubscribe(tab2)
	defer n.Unsubscribe(other)

	n.Notify("v1", Session)

	_, ok := receive(t, tab1)
	assert.True(t, ok)
	_, ok = receive(t, tab2)
	assert.True(t, ok)
	_, ok = receive(t, other)
	assert.False(t, ok, "other visitors are not notified")
}

func TestNotifier_SendNonBlocking(t *testing.T) {
	n := New()
	ch := n.Subscribe("v1")
	defer n.Unsubscribe(ch)

	ch <- Session

	done := make(chan struct{})
	go func() {
		n.Broadcast(Feed)
		n.Notify("v1", Session)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Error("send blocked on full channel")
	}

	ev, ok := receive(t, ch)
	require.True(t, ok)
	assert.Equal(t, Session|Feed, ev)
}

func TestNotifier_MergesPendingEvents(t *testing.T) {
	tests := []struct {
		name string
		send func(n *Notifier)
		want Event
	}{
		{
			name: "session after pending feed",
			send: func(n *Notifier) {
				n.Broadcast(Feed)
				n.Notify("v1", Session)
			},
			want: Feed | Session,
		},
		{
			name: "resize after pending feed",
			send: func(n *Notifier) {
				n.Broadcast(Feed)
				n.Notify("v1", Resize)
			},
			want: Feed | Resize,
		},
		{
			name: "repeated feed",
			send: func(n *Notifier) {
				n.Broadcast(Feed)
				n.Broadcast(Feed)
			},
			want: Feed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New()
			ch := n.Subscribe("v1")
			defer n.Unsubscribe(ch)

			tt.send(n)

			ev, ok := receive(t, ch)
			require.True(t, ok)
			assert.Equal(t, tt.want, ev)
			_, ok = receive(t, ch)
			assert.False(t, ok, "merged into one pending event")
		})
	}
}

func TestEvent_Has(t *testing.T) {
	ev := Feed | Session
	assert.True(t, ev.Has(Feed))
	assert.True(t, ev.Has(Session))
	assert.False(t, ev.Has(Resize))
	assert.False(t, ev.Has(Feed|Resize))
}

func TestNotifier_Concurrent(t *testing.T) {
	n := New()

	var wg sync.WaitGroup
	const numGoroutines = 10

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := n.Subscribe("v1")
			n.Broadcast(Feed)
			n.Notify("v1", Session)
			n.Unsubscribe(ch)
		}()
	}

	wg.Wait()
	assert.Equal(t, 0, n.Len())
}
