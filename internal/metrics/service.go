package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		RosterWrites: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_roster_writes_total",
			Help: "The total number of successful writes to the player collection.",
		}),
		WriteFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_roster_write_failures_total",
			Help: "The total number of player collection writes rejected or failed.",
		}),
		SnapshotsPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_roster_snapshots_pushed_total",
			Help: "The total number of roster snapshots pushed to live subscribers.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtside_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		FeedConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtside_feed_connected",
			Help: "Whether the live roster feed has delivered its first snapshot (1) or is slow/broken (0).",
		}),
		SnapshotWait: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtside_first_snapshot_wait_seconds",
			Help:    "Time from subscribing to the first roster snapshot arriving.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtside_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.RosterWrites,
		s.WriteFailures,
		s.SnapshotsPushed,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.FeedConnected,
		s.SnapshotWait,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncRosterWrites() {
	s.RosterWrites.Inc()
}

func (s *Service) IncWriteFailures() {
	s.WriteFailures.Inc()
}

func (s *Service) IncSnapshotsPushed() {
	s.SnapshotsPushed.Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetFeedConnected(connected bool) {
	if connected {
		s.FeedConnected.Set(1)
	} else {
		s.FeedConnected.Set(0)
	}
}

func (s *Service) ObserveSnapshotWait(seconds float64) {
	s.SnapshotWait.Observe(seconds)
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
