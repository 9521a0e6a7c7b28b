// ABOUTME: Live query subscriptions over storage writes.
// ABOUTME: Each write broadcasts a coalesced signal to topic subscribers.
package storage

// Topic identifies a class of records a subscriber can watch.
type Topic string

const (
	TopicFoods   Topic = "foods"
	TopicLogs    Topic = "logs"
	TopicMetrics Topic = "metrics"
)

// Watch subscribes to change notifications for a topic. The channel
// receives a signal after every write touching the topic; signals coalesce
// when the subscriber lags, so readers re-run their query on receive rather
// than counting events. The returned cancel func unsubscribes and closes
// the channel, and is safe to call more than once.
func (d *DB) Watch(topic Topic) (<-chan struct{}, func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ch := make(chan struct{}, 1)
	if d.watchers[topic] == nil {
		d.watchers[topic] = make(map[int]chan struct{})
	}
	id := d.nextID
	d.nextID++
	d.watchers[topic][id] = ch

	cancel := func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if sub, ok := d.watchers[topic][id]; ok {
			delete(d.watchers[topic], id)
			close(sub)
		}
	}
	return ch, cancel
}

// notify signals all subscribers of a topic without blocking on slow ones.
func (d *DB) notify(topic Topic) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, ch := range d.watchers[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// closeWatchers drops every subscription; called from Close.
func (d *DB) closeWatchers() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for topic, subs := range d.watchers {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
		delete(d.watchers, topic)
	}
}
