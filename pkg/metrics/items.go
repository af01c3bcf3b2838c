package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ItemMetrics records lifecycle events for crafted items.
type ItemMetrics struct {
	crafted  *prometheus.CounterVec
	consumed *prometheus.CounterVec
	sold     *prometheus.CounterVec
	treasury prometheus.Counter
}

// NewItemMetrics registers the item lifecycle metrics on the provided registerer.
func NewItemMetrics(reg prometheus.Registerer) *ItemMetrics {
	if reg == nil {
		return &ItemMetrics{}
	}
	crafted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "items_crafted_total",
		Help: "Items crafted, by kind and recorded outcome.",
	}, []string{"kind", "outcome"})
	consumed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "items_consumed_total",
		Help: "Consumption events recorded, by kind.",
	}, []string{"kind"})
	sold := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "items_sold_total",
		Help: "Items sold, by kind.",
	}, []string{"kind"})
	treasury := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "treasury_gold_credited_total",
		Help: "Gold credited to house treasuries from sales.",
	})
	reg.MustRegister(crafted, consumed, sold, treasury)
	return &ItemMetrics{
		crafted:  crafted,
		consumed: consumed,
		sold:     sold,
		treasury: treasury,
	}
}

// IncCrafted increments the crafted counter for a kind and outcome.
func (m *ItemMetrics) IncCrafted(kind, outcome string) {
	if m == nil || m.crafted == nil {
		return
	}
	m.crafted.WithLabelValues(normalizeLabel(kind), normalizeLabel(outcome)).Inc()
}

// IncConsumed increments the consumed counter for a kind.
func (m *ItemMetrics) IncConsumed(kind string) {
	if m == nil || m.consumed == nil {
		return
	}
	m.consumed.WithLabelValues(normalizeLabel(kind)).Inc()
}

// IncSold increments the sold counter for a kind.
func (m *ItemMetrics) IncSold(kind string) {
	if m == nil || m.sold == nil {
		return
	}
	m.sold.WithLabelValues(normalizeLabel(kind)).Inc()
}

// AddTreasuryCredit records gold credited to a treasury.
func (m *ItemMetrics) AddTreasuryCredit(gold int) {
	if m == nil || m.treasury == nil || gold <= 0 {
		return
	}
	m.treasury.Add(float64(gold))
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
