// export_test.go exposes debouncer internals for white-box testing.
package watcher

// Pending reports how many distinct paths are waiting for the window to close.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Flush delivers pending paths immediately and blocks until the callback
// returns. A batch whose timer has already fired is left to that timer.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	paths := d.drain()
	d.mu.Unlock()

	if len(paths) > 0 && d.onBatch != nil {
		d.onBatch(paths)
	}
}
