// Package metrics はPrometheusメトリクスの収集と公開を提供します。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Operation results recorded by RecordOperation.
const (
	ResultOK         = "ok"
	ResultInvalid    = "invalid"
	ResultConflict   = "conflict"
	ResultNotFound   = "not_found"
	ResultError      = "error"
	ResultBadRequest = "bad_request"
)

// Collector はPrometheusメトリクスを収集する実装です。
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
	operations   *prometheus.CounterVec
	cacheLookups *prometheus.CounterVec
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録します。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_http_requests_total",
			Help: "HTTPリクエスト数（ルート・メソッド・ステータス別）",
		}, []string{"route", "method", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_http_request_duration_seconds",
			Help:    "HTTPリクエストのレイテンシ（秒）",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_resource_operations_total",
			Help: "リソース操作の結果別件数",
		}, []string{"resource", "operation", "result"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_cache_lookups_total",
			Help: "一覧キャッシュの参照結果",
		}, []string{"resource", "result"}),
	}

	reg.MustRegister(c.httpRequests, c.httpLatency, c.operations, c.cacheLookups)
	return c
}

// ObserveHTTP は1リクエスト分の件数とレイテンシを記録します。
func (c *Collector) ObserveHTTP(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordOperation はリソース操作（add, update, delete など）の結果を記録します。
func (c *Collector) RecordOperation(resource, operation, result string) {
	c.operations.WithLabelValues(resource, operation, result).Inc()
}

// RecordCacheLookup は一覧キャッシュのヒット/ミスを記録します。
func (c *Collector) RecordCacheLookup(resource string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(resource, result).Inc()
}

// ResultForStatus maps a response status to an operation result label.
func ResultForStatus(status int) string {
	switch {
	case status >= 200 && status < 300:
		return ResultOK
	case status == http.StatusNotFound:
		return ResultNotFound
	case status == http.StatusConflict:
		return ResultConflict
	case status == http.StatusUnprocessableEntity:
		return ResultInvalid
	case status >= 400 && status < 500:
		return ResultBadRequest
	default:
		return ResultError
	}
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返します。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
