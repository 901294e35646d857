// Package metrics registers the service's Prometheus collectors and
// exposes them over /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "helapesa"

var (
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	ChargesInitiated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "paystack_charges_initiated_total",
		Help:      "Mobile-money charges opened against the gateway.",
	}, []string{"result"})

	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "paystack_webhook_events_total",
		Help:      "Reconciled webhook events by type.",
	}, []string{"event"})

	WebhookRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "paystack_webhook_rejected_total",
		Help:      "Webhook deliveries dropped for a bad signature.",
	})

	LoansDisbursed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loans_disbursed_total",
		Help:      "Loan disbursements released to borrowers.",
	})

	SMSSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sms_sent_total",
		Help:      "Password-reset SMS deliveries by result.",
	}, []string{"result"})

	RealtimeClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "realtime_clients",
		Help:      "Currently connected websocket clients.",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request latency labeled with the matched chi route
// pattern rather than the raw path, keeping cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		RequestDuration.WithLabelValues(route, r.Method, strconv.Itoa(ww.Status())).
			Observe(time.Since(start).Seconds())
	})
}
