// Package notifier fans update pings out to the open update streams.
package notifier

import "sync"

// Event is a set of changes a stream has to catch up with. Events sent
// while a stream is busy are merged into its pending set, never dropped.
type Event uint8

// Events.
const (
	// Feed means the notification feed changed for everyone.
	Feed Event = 1 << iota
	// Session means one visitor's session changed (login, logout), so
	// every open page of that visitor is stale.
	Session
	// Resize means the visitor's viewport crossed the mobile breakpoint.
	Resize
)

// Has reports whether e includes every change of other.
func (e Event) Has(other Event) bool {
	return e&other == other
}

// Notifier delivers events to subscribed update streams. Each stream
// belongs to a visitor so session changes reach that visitor's tabs only.
type Notifier struct {
	mu        sync.Mutex
	listeners map[chan Event]string
}

// New creates a new Notifier instance.
func New() *Notifier {
	return &Notifier{
		listeners: make(map[chan Event]string),
	}
}

// Subscribe returns a channel receiving the events of visitor and the
// broadcast events. The caller must call Unsubscribe when done.
func (n *Notifier) Subscribe(visitor string) chan Event {
	ch := make(chan Event, 1)
	n.mu.Lock()
	n.listeners[ch] = visitor
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener channel and closes it.
func (n *Notifier) Unsubscribe(ch chan Event) {
	n.mu.Lock()
	_, ok := n.listeners[ch]
	delete(n.listeners, ch)
	n.mu.Unlock()
	if ok {
		close(ch)
	}
}

// Broadcast sends ev to every listener.
func (n *Notifier) Broadcast(ev Event) {
	n.send(ev, func(string) bool { return true })
}

// Notify sends ev to the listeners of visitor.
func (n *Notifier) Notify(visitor string, ev Event) {
	n.send(ev, func(v string) bool { return v == visitor })
}

// send never blocks. A listener with a pending event gets the union of
// both. Senders hold the lock, so listeners only ever drain channels
// concurrently and the refill always fits.
func (n *Notifier) send(ev Event, match func(string) bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for ch, visitor := range n.listeners {
		if !match(visitor) {
			continue
		}
		merged := ev
		select {
		case pending := <-ch:
			merged |= pending
		default:
		}
		ch <- merged
	}
}

// Len returns the number of open listeners.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.listeners)
}
