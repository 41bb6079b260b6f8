// Package metrics объявляет метрики Prometheus сервиса.
// Метрики регистрируются в реестре по умолчанию при импорте пакета.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payments_tracker"

// HTTPRequestsTotal - количество обработанных HTTP-запросов.
// Метки: method, route (шаблон chi), code.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by method, route and status code.",
	},
	[]string{"method", "route", "code"},
)

// HTTPRequestDuration - длительность обработки HTTP-запросов.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests by method and route.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// PaymentsWrittenTotal - записи платежей. Метка op: create, update, delete.
var PaymentsWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_written_total",
		Help:      "Total number of payment writes by operation.",
	},
	[]string{"op"},
)

// ExportsTotal - сформированные выгрузки. Метка format: excel, pdf.
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of payment exports by format.",
	},
	[]string{"format"},
)

// TenantOverrideFallbacksTotal - запросы администратора с неверным
// X-Cliente-Gerenciado-Id, обработанные в его собственном клиенте.
var TenantOverrideFallbacksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tenant_override_fallbacks_total",
		Help:      "Total number of invalid managed-tenant overrides that fell back to the admin's own tenant.",
	},
)
