// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
)

// RPC metrics
var (
	RPCRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "splitledger_rpc_requests_total",
			Help: "Total number of RPC calls by procedure and result code",
		},
		[]string{"procedure", "code"},
	)

	RPCDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "splitledger_rpc_duration_seconds",
			Help:    "RPC latency by procedure",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)
)

// Snapshotter is the read side of the ledger manager.
type Snapshotter interface {
	Snapshot() ledger.State
}

// LedgerCollector reports ledger sizes and totals at scrape time.
type LedgerCollector struct {
	ledger Snapshotter

	expenses    *prometheus.Desc
	users       *prometheus.Desc
	totalSpent  *prometheus.Desc
	budgetSpent *prometheus.Desc
	budgetLimit *prometheus.Desc
}

var _ prometheus.Collector = (*LedgerCollector)(nil)

// NewLedgerCollector creates a collector reading from l.
func NewLedgerCollector(l Snapshotter) *LedgerCollector {
	return &LedgerCollector{
		ledger:      l,
		expenses:    prometheus.NewDesc("splitledger_expenses", "Number of recorded expenses", nil, nil),
		users:       prometheus.NewDesc("splitledger_users", "Number of users", nil, nil),
		totalSpent:  prometheus.NewDesc("splitledger_total_spent", "Sum of all expense amounts", []string{"currency"}, nil),
		budgetSpent: prometheus.NewDesc("splitledger_budget_spent", "Derived spent amount per budget", []string{"category"}, nil),
		budgetLimit: prometheus.NewDesc("splitledger_budget_limit", "Limit per budget", []string{"category"}, nil),
	}
}

func (c *LedgerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.expenses
	ch <- c.users
	ch <- c.totalSpent
	ch <- c.budgetSpent
	ch <- c.budgetLimit
}

func (c *LedgerCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.ledger.Snapshot()

	ch <- prometheus.MustNewConstMetric(c.expenses, prometheus.GaugeValue, float64(len(s.Expenses)))
	ch <- prometheus.MustNewConstMetric(c.users, prometheus.GaugeValue, float64(len(s.Users)))

	total, _ := calculator.TotalSpent(s.Expenses).Float64()
	ch <- prometheus.MustNewConstMetric(c.totalSpent, prometheus.GaugeValue, total, string(s.Currency))

	for _, b := range s.Budgets {
		spent, _ := b.Spent.Float64()
		limit, _ := b.Limit.Float64()
		ch <- prometheus.MustNewConstMetric(c.budgetSpent, prometheus.GaugeValue, spent, string(b.Category))
		ch <- prometheus.MustNewConstMetric(c.budgetLimit, prometheus.GaugeValue, limit, string(b.Category))
	}
}

// NewRegistry returns a registry with the RPC metrics, the ledger collector
// and the standard Go/process collectors.
func NewRegistry(l Snapshotter) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		RPCRequests,
		RPCDuration,
		NewLedgerCollector(l),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
