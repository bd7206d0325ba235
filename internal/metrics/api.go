package metrics

import (
	"strconv"
	"time"
)

// ObserveAPIRequest records one outbound API call. status 0 means the request
// failed before a response arrived.
func ObserveAPIRequest(endpoint string, status int, elapsed time.Duration) {
	label := StatusError
	if status > 0 {
		label = strconv.Itoa(status)
	}
	APIRequestsTotal.WithLabelValues(endpoint, label).Inc()
	APIRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
