package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"handler", "method", "status_code"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"handler", "method", "status_code"},
	)
)

var (
	CartAddsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_adds_total",
			Help: "Total number of accepted cart adds",
		},
	)

	CartAddRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_add_rejected_total",
			Help: "Total number of rejected cart adds",
		},
		[]string{"reason"},
	)

	CartClearsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_clears_total",
			Help: "Total number of cart clear operations",
		},
	)

	CheckoutAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_attempts_total",
			Help: "Total number of checkout attempts",
		},
	)

	CheckoutSuccessTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_success_total",
			Help: "Total number of successful checkouts",
		},
	)

	CheckoutFailureTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_failure_total",
			Help: "Total number of failed checkouts",
		},
		[]string{"reason"},
	)

	CheckoutItemsPerOrder = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_items_per_order",
			Help:    "Number of items in checked-out carts",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)

	CheckoutOrderValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_order_value",
			Help:    "Order totals at checkout in minor currency units",
			Buckets: prometheus.ExponentialBuckets(10000, 2, 10),
		},
	)
)

var (
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query_type", "table"},
	)

	DBConnectionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_active",
			Help: "Number of database connections in use",
		},
	)

	DBConnectionsIdle = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		},
	)

	RedisCommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_command_duration_seconds",
			Help:    "Duration of Redis commands in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)
)

func TimeDBQuery(queryType, table string) func() {
	start := time.Now()
	return func() {
		DBQueryDuration.WithLabelValues(queryType, table).Observe(time.Since(start).Seconds())
	}
}

func RecordCartAdd() {
	CartAddsTotal.Inc()
}

func RecordCartAddRejected(reason string) {
	CartAddRejectedTotal.WithLabelValues(reason).Inc()
}

func RecordCartClear() {
	CartClearsTotal.Inc()
}

func RecordCheckoutAttempt() {
	CheckoutAttemptsTotal.Inc()
}

func RecordCheckoutSuccess(itemCount int, total int64) {
	CheckoutSuccessTotal.Inc()
	CheckoutItemsPerOrder.Observe(float64(itemCount))
	CheckoutOrderValue.Observe(float64(total))
}

func RecordCheckoutFailure(reason string) {
	CheckoutFailureTotal.WithLabelValues(reason).Inc()
}
