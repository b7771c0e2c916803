package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	RosterWrites       prometheus.Counter
	WriteFailures      prometheus.Counter
	SnapshotsPushed    prometheus.Counter
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	FeedConnected      prometheus.Gauge
	SnapshotWait       prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
