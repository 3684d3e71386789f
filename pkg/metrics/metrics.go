package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del ledger de inventario, expuestos en /metrics.
var (
	// MovementsRecorded movimientos asentados, por clase.
	MovementsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hostaly",
		Subsystem: "ledger",
		Name:      "movements_recorded_total",
		Help:      "Movimientos de inventario asentados, por clase.",
	}, []string{"kind"})

	// InsufficientStockRejections consumos rechazados por stock insuficiente.
	InsufficientStockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hostaly",
		Subsystem: "ledger",
		Name:      "insufficient_stock_rejections_total",
		Help:      "Operaciones de consumo rechazadas por stock insuficiente.",
	})

	// BatchLinesApplied líneas aplicadas por el flujo de consumo por lotes.
	BatchLinesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hostaly",
		Subsystem: "ledger",
		Name:      "batch_lines_applied_total",
		Help:      "Líneas de consumo por lotes aplicadas.",
	})
)
