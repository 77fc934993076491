package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialhub_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// EntityWrites counts create/update/delete operations per entity.
	EntityWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialhub_entity_writes_total",
		Help: "Total number of entity write operations",
	}, []string{"entity", "operation"})

	// SpreadsheetExports counts spreadsheet exports per entity.
	SpreadsheetExports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialhub_spreadsheet_exports_total",
		Help: "Total number of spreadsheet exports served",
	}, []string{"entity"})

	// CacheHits counts cache lookups by outcome.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "socialhub_cache_lookups_total",
		Help: "Total number of cache lookups by outcome",
	}, []string{"key", "outcome"})
)
