package notify

import "time"

func (d *Dispatcher) SetRetryAfter(v time.Duration) {
	d.retryAfter = v
}
