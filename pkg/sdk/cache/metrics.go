package cache

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// storeMetrics holds the instruments recorded by a Store. Instruments come
// from the global meter provider unless WithMeterProvider is passed.
type storeMetrics struct {
	hits          metric.Int64Counter // reads served from a fresh entry
	misses        metric.Int64Counter // reads that had to wait for a fetch
	fetches       metric.Int64Counter // remote calls actually started
	invalidations metric.Int64Counter
}

func newStoreMetrics(provider metric.MeterProvider) (*storeMetrics, error) {
	var meter metric.Meter
	if provider != nil {
		meter = provider.Meter("trainingportal/cache")
	} else {
		meter = otel.Meter("trainingportal/cache")
	}

	hits, err := meter.Int64Counter(
		"cache.hit.count",
		metric.WithDescription("Reads served from a fresh cache entry"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return nil, err
	}

	misses, err := meter.Int64Counter(
		"cache.miss.count",
		metric.WithDescription("Reads that found no fresh entry"),
		metric.WithUnit("{read}"),
	)
	if err != nil {
		return nil, err
	}

	fetches, err := meter.Int64Counter(
		"cache.fetch.count",
		metric.WithDescription("Remote fetches started by the cache"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		return nil, err
	}

	invalidations, err := meter.Int64Counter(
		"cache.invalidation.count",
		metric.WithDescription("Entries marked stale"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	return &storeMetrics{
		hits:          hits,
		misses:        misses,
		fetches:       fetches,
		invalidations: invalidations,
	}, nil
}

func (m *storeMetrics) record(counter metric.Int64Counter, key Key) {
	counter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("cache.kind", key.Kind)))
}
