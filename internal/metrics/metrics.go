package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GUI Layer Metrics
var (
	ItemsRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsRegistered,
			Help: HelpTextItemsRegistered,
		},
		[]string{LabelStrategy},
	)

	ItemsUnregistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsUnregistered,
			Help: HelpTextItemsUnregistered,
		},
	)

	ItemsRendered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsRendered,
			Help: HelpTextItemsRendered,
		},
	)

	UpdateTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUpdateTicks,
			Help: HelpTextUpdateTicks,
		},
	)

	PlaceholderErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlaceholderErrors,
			Help: HelpTextPlaceholderErrors,
		},
	)
)

// Skull Profile Metrics
var (
	ProfileCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheHits,
			Help: HelpTextProfileCacheHits,
		},
	)

	ProfileCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameProfileCacheMisses,
			Help: HelpTextProfileCacheMisses,
		},
	)
)
