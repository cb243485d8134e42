package spawnadmin

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records launch and exit statistics. A nil *Metrics records nothing.
type Metrics struct {
	launches    *prometheus.CounterVec
	exits       *prometheus.CounterVec
	running     prometheus.Gauge
	waitSeconds *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		launches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spawnadmin_launches_total",
				Help: "Launch attempts by mode (elevated, test) and result (started, failed)",
			},
			[]string{"mode", "result"},
		),
		exits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spawnadmin_exits_total",
				Help: "Finished commands by mode and exit code (\"unknown\" when undeterminable)",
			},
			[]string{"mode", "code"},
		),
		running: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "spawnadmin_running_commands",
				Help: "Commands started and not yet exited",
			},
		),
		waitSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spawnadmin_wait_duration_seconds",
				Help:    "Time from launch until the command exited",
				Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
			},
			[]string{"mode"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.launches, m.exits, m.running, m.waitSeconds)
	}
	return m
}

func (m *Metrics) launched(mode string) {
	if m == nil {
		return
	}
	m.launches.WithLabelValues(mode, "started").Inc()
	m.running.Inc()
}

func (m *Metrics) launchFailed(mode string) {
	if m == nil {
		return
	}
	m.launches.WithLabelValues(mode, "failed").Inc()
}

func (m *Metrics) exited(mode string, code ExitCode, waited time.Duration) {
	if m == nil {
		return
	}
	m.running.Dec()
	m.exits.WithLabelValues(mode, exitLabel(code)).Inc()
	m.waitSeconds.WithLabelValues(mode).Observe(waited.Seconds())
}

func exitLabel(code ExitCode) string {
	if !code.Known() {
		return "unknown"
	}
	return strconv.Itoa(int(code))
}
