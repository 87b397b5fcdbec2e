package metrics

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

var (
	once                           sync.Once
	metricsRouter                  *chi.Mux
	clientRequestDurationHistogram *prometheus.HistogramVec
	subgraphClientLatency          *prometheus.HistogramVec
	duneClientLatency              *prometheus.HistogramVec
	dbLatency                      *prometheus.HistogramVec
	apiRequestDurationHistogram    *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	analyticsCacheCounter          *prometheus.CounterVec
	totalStakedGauge               *prometheus.GaugeVec
	totalStakersGauge              *prometheus.GaugeVec
)

// Init initializes the metrics package.
func Init(metricsPort int) {
	once.Do(func() {
		initMetricsRouter(metricsPort)
		registerMetrics()
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsPort int) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	metricsAddr := fmt.Sprintf(":%d", metricsPort)
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Printf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	// client requests are the ones sending to other service
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	subgraphClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "subgraph_client_latency_seconds",
			Help:    "Histogram of subgraph client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "network", "status"},
	)

	duneClientLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dune_client_latency_seconds",
			Help:    "Histogram of analytics client durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	apiRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Histogram of incoming API request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "path", "status"},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	analyticsCacheCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analytics_cache_total",
			Help: "Analytics cache lookups split by hit/miss.",
		},
		[]string{"outcome"},
	)

	totalStakedGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "builders_total_staked",
			Help: "Last observed total staked (token units) per network.",
		},
		[]string{"network"},
	)

	totalStakersGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "builders_total_stakers",
			Help: "Last observed total staker count per network.",
		},
		[]string{"network"},
	)

	prometheus.MustRegister(
		clientRequestDurationHistogram,
		subgraphClientLatency,
		duneClientLatency,
		dbLatency,
		apiRequestDurationHistogram,
		pollerDurationHistogram,
		analyticsCacheCounter,
		totalStakedGauge,
		totalStakersGauge,
	)
}

func RecordSubgraphClientLatency(d time.Duration, method, network string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	subgraphClientLatency.WithLabelValues(method, network, status.String()).Observe(d.Seconds())
}

func RecordDuneClientLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	duneClientLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	status := Success
	if failure {
		status = Error
	}

	dbLatency.WithLabelValues(method, status.String()).Observe(d.Seconds())
}

func RecordApiRequestDuration(d time.Duration, method, path string, statusCode int) {
	apiRequestDurationHistogram.WithLabelValues(
		method,
		path,
		fmt.Sprintf("%d", statusCode),
	).Observe(d.Seconds())
}

func RecordAnalyticsCacheHit() {
	analyticsCacheCounter.WithLabelValues("hit").Inc()
}

func RecordAnalyticsCacheMiss() {
	analyticsCacheCounter.WithLabelValues("miss").Inc()
}

func RecordTotalStaked(network string, staked float64) {
	totalStakedGauge.WithLabelValues(network).Set(staked)
}

func RecordTotalStakers(network string, stakers uint64) {
	totalStakersGauge.WithLabelValues(network).Set(float64(stakers))
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}
