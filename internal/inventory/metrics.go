package inventory

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeOK       = "ok"
	outcomeShort    = "insufficient_stock"
	outcomeRejected = "rejected"
)

type Metrics struct {
	Purchases  *prometheus.CounterVec
	SaleMisses prometheus.Counter
	Replenish  prometheus.Counter
	Books      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Purchases: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookstore_purchases_total",
				Help: "Purchase calls by outcome",
			},
			[]string{"outcome"},
		),
		SaleMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookstore_sale_misses_total",
			Help: "Copies requested but not in stock",
		}),
		Replenish: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookstore_copies_replenished_total",
			Help: "Copies added to existing books",
		}),
		Books: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bookstore_catalog_books",
			Help: "Books currently in the catalog",
		}),
	}

	reg.MustRegister(m.Purchases, m.SaleMisses, m.Replenish, m.Books)
	return m
}

func (m *Metrics) purchase(outcome string) {
	if m == nil {
		return
	}
	m.Purchases.WithLabelValues(outcome).Inc()
}

func (m *Metrics) missed(n int) {
	if m == nil {
		return
	}
	m.SaleMisses.Add(float64(n))
}

func (m *Metrics) replenished(n int) {
	if m == nil {
		return
	}
	m.Replenish.Add(float64(n))
}

func (m *Metrics) books(n int) {
	if m == nil {
		return
	}
	m.Books.Set(float64(n))
}
