package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	logMessagesTotalMetricName     = "explorer_kit_log_messages_total"
	signRequestsTotalMetricName    = "sign_requests_total"
	signFailuresTotalMetricName    = "sign_failures_total"
	ledgerAccountQueriesMetricName = "ledger_account_queries_total"

	// LevelLabel is log level label.
	LevelLabel = "level"
	// DeviceLabel is signing device label.
	DeviceLabel = "device"
	// TransportLabel is ledger transport label.
	TransportLabel = "transport"
)

// Registry contains metrics.
type Registry struct {
	LogMessagesCounterVec          *prometheus.CounterVec
	SignRequestsCounterVec         *prometheus.CounterVec
	SignFailuresCounterVec         *prometheus.CounterVec
	LedgerAccountQueriesCounterVec *prometheus.CounterVec
}

// NewRegistry returns new metric registry.
func NewRegistry() *Registry {
	return &Registry{
		LogMessagesCounterVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: logMessagesTotalMetricName,
			Help: "Logged warnings and errors by level",
		},
			[]string{LevelLabel},
		),
		SignRequestsCounterVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: signRequestsTotalMetricName,
			Help: "Amino sign requests by device",
		},
			[]string{DeviceLabel},
		),
		SignFailuresCounterVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: signFailuresTotalMetricName,
			Help: "Failed amino sign requests by device",
		},
			[]string{DeviceLabel},
		),
		LedgerAccountQueriesCounterVec: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: ledgerAccountQueriesMetricName,
			Help: "Ledger account queries by transport",
		},
			[]string{TransportLabel},
		),
	}
}

// Register registers all the metrics to prometheus.
func (m *Registry) Register(registry prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.LogMessagesCounterVec,
		m.SignRequestsCounterVec,
		m.SignFailuresCounterVec,
		m.LedgerAccountQueriesCounterVec,
	}

	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return errors.WithStack(err)
		}
	}

	return nil
}

// IncrementLogMessages increments the log messages counter of the level.
func (m *Registry) IncrementLogMessages(level string) {
	m.LogMessagesCounterVec.WithLabelValues(level).Inc()
}

// IncrementSignRequests increments the sign requests counter of the device.
func (m *Registry) IncrementSignRequests(device string) {
	m.SignRequestsCounterVec.WithLabelValues(device).Inc()
}

// IncrementSignFailures increments the sign failures counter of the device.
func (m *Registry) IncrementSignFailures(device string) {
	m.SignFailuresCounterVec.WithLabelValues(device).Inc()
}

// IncrementLedgerAccountQueries increments the ledger account queries counter of the transport.
func (m *Registry) IncrementLedgerAccountQueries(transport string) {
	m.LedgerAccountQueriesCounterVec.WithLabelValues(transport).Inc()
}

// WriteTextFile writes the gathered metrics to the file in the prometheus text format.
func WriteTextFile(path string, gatherer prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return errors.Wrapf(err, "failed to write metrics file, path:%s", path)
	}

	return nil
}
