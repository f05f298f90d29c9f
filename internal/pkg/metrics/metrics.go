// Package metrics declares the storefront's Prometheus metrics. They are
// registered with the default registry at package init and exposed on
// /metrics together with echoprometheus' HTTP metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Catalog ──────────────────────────────────────────────────────────────────

// CatalogMutationsTotal counts successful catalog writes.
// Label:
//   - op: "insert", "update_status", "delete" or "reset"
var CatalogMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_mutations_total",
		Help:      "Total number of successful catalog mutations, by operation.",
	},
	[]string{"op"},
)

// CatalogErrorsTotal counts failed catalog operations.
// Label:
//   - reason: "not_found" or "storage"
var CatalogErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_errors_total",
		Help:      "Total number of failed catalog operations, by reason.",
	},
	[]string{"reason"},
)

// ── Auth ─────────────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "admin" or "user"
//   - result: "success", "invalid_credentials", "not_found" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by account kind and result.",
	},
	[]string{"kind", "result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "invalid_input", "conflict" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Site ─────────────────────────────────────────────────────────────────────

// MaintenanceEnabled is 1 while maintenance mode is on, as last written by
// this process.
var MaintenanceEnabled = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "maintenance_enabled",
		Help:      "Whether maintenance mode was last set on (1) or off (0).",
	},
)

// SiteReadFailuresTotal counts site-state reads that fell back to defaults.
// Label:
//   - document: "maintenance" or "announcement"
var SiteReadFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "site_read_failures_total",
		Help:      "Site-state reads that failed and were answered with the default value.",
	},
	[]string{"document"},
)
