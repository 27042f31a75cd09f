// Package metrics define y registra las métricas Prometheus de la API de inventario.
// Es la única fuente de verdad de nombres, labels y help strings; las variables se
// registran en el registry por defecto vía promauto al importar el paquete.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ProductsCreatedTotal cuenta productos creados con éxito (cada uno implica
// exactamente un evento de auditoría 'add').
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total de productos creados con su evento de auditoría inicial.",
	},
)

// QuantityUpdatesTotal cuenta intentos de actualización de cantidad.
// Label result: "updated" | "not_found" | "error".
var QuantityUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quantity_updates_total",
		Help:      "Total de actualizaciones de cantidad, por resultado.",
	},
	[]string{"result"},
)

// AuditEventsTotal cuenta eventos de auditoría registrados, por acción.
// Label action: "add" | "update".
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total de eventos de auditoría registrados, por acción.",
	},
	[]string{"action"},
)

// AdminDeniedTotal cuenta peticiones administrativas rechazadas por falta de grant.
var AdminDeniedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "admin_denied_total",
		Help:      "Total de peticiones admin denegadas antes de llegar al agregador.",
	},
)
