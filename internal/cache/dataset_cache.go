// Package cache holds the single-slot, time-bounded dataset cache that
// mediates between the slow upstream rate source and repeated queries.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"

	"freight-quotation-service/internal/dataset"
	"freight-quotation-service/internal/domain"
	"freight-quotation-service/internal/platform/obs"
	"freight-quotation-service/internal/ports"
)

const (
	// DefaultTTL matches the upstream sheet's acceptable staleness window.
	DefaultTTL = 5 * time.Minute

	defaultFetchTimeout = 15 * time.Second
	snapshotTimeout     = 3 * time.Second
)

// Options configures a DatasetCache. Zero values select defaults.
type Options struct {
	TTL          time.Duration
	FetchTimeout time.Duration
	Snapshots    ports.SnapshotStore // optional warm-start store
	Now          func() time.Time    // injectable clock for tests
}

// entry is one immutable cache generation. Refreshes replace the whole
// entry; readers never observe a partially updated dataset.
type entry struct {
	records   []domain.RouteRecord
	fetchedAt time.Time
}

// DatasetCache serves the current cleaned dataset, refreshing it from
// the rate source when the TTL has elapsed.
//
// Concurrent callers that observe a stale entry share a single in-flight
// refresh; the upstream is never fetched twice for the same stale window.
// A failed refresh keeps the previous generation in place.
type DatasetCache struct {
	source    ports.RateSource
	snapshots ports.SnapshotStore

	ttl          time.Duration
	fetchTimeout time.Duration
	now          func() time.Time

	group singleflight.Group

	mu      sync.RWMutex
	current *entry

	hits      atomic.Int64
	misses    atomic.Int64
	refreshes atomic.Int64
	failures  atomic.Int64
}

func New(source ports.RateSource, opts Options) *DatasetCache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &DatasetCache{
		source:       source,
		snapshots:    opts.Snapshots,
		ttl:          opts.TTL,
		fetchTimeout: opts.FetchTimeout,
		now:          opts.Now,
	}
}

// Current returns the dataset snapshot, refreshing it first if stale.
//
// Failures degrade rather than propagate: a failed refresh serves the
// previous generation, then the snapshot store, then an empty dataset.
// The returned slice is shared and must be treated as read-only.
func (c *DatasetCache) Current(ctx context.Context) []domain.RouteRecord {
	if records, ok := c.fresh(); ok {
		c.hits.Inc()
		return records
	}
	c.misses.Inc()

	v, err, _ := c.group.Do("dataset", func() (any, error) {
		// A refresh that completed while this caller queued counts.
		if records, ok := c.fresh(); ok {
			return records, nil
		}
		return c.refresh()
	})
	if err == nil {
		return v.([]domain.RouteRecord)
	}

	c.mu.RLock()
	stale := c.current
	c.mu.RUnlock()
	if stale != nil {
		log.Printf("op=cache.current msg=\"serving stale dataset\" age=%s err=%v",
			c.now().Sub(stale.fetchedAt), err)
		return stale.records
	}

	if c.snapshots != nil {
		if records, lerr := c.snapshots.Load(ctx); lerr == nil && len(records) > 0 {
			log.Printf("op=cache.current msg=\"warm start from snapshot\" records=%d", len(records))
			// Install with a zero timestamp: the snapshot is servable
			// but every call keeps retrying the upstream.
			c.install(records, time.Time{})
			return records
		}
	}

	log.Printf("op=cache.current msg=\"no dataset available\" err=%v", err)
	return []domain.RouteRecord{}
}

// Invalidate marks the current entry stale without discarding it, so the
// next query refetches while stale-serving still works on failure.
func (c *DatasetCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current = &entry{records: c.current.records}
	}
}

// Stats reports cache counters for the health endpoint.
type Stats struct {
	Hits      int64
	Misses    int64
	Refreshes int64
	Failures  int64
	Records   int
	FetchedAt time.Time
}

func (c *DatasetCache) Stats() Stats {
	s := Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Refreshes: c.refreshes.Load(),
		Failures:  c.failures.Load(),
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current != nil {
		s.Records = len(c.current.records)
		s.FetchedAt = c.current.fetchedAt
	}
	return s
}

func (c *DatasetCache) fresh() ([]domain.RouteRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.current == nil {
		return nil, false
	}
	if c.now().Sub(c.current.fetchedAt) > c.ttl {
		return nil, false
	}
	return c.current.records, true
}

// refresh fetches, cleans and installs a new cache generation.
// It runs on a detached context so one caller's cancellation cannot
// poison the result shared with the other single-flight waiters.
func (c *DatasetCache) refresh() (records []domain.RouteRecord, err error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()
	defer obs.Time(ctx, "cache.refresh")(&err)

	raws, err := c.source.FetchRawRows(ctx)
	if err != nil {
		c.failures.Inc()
		return nil, fmt.Errorf("refresh dataset: fetch raw rows: %w", err)
	}
	if len(raws) == 0 {
		// Some upstreams degrade to an empty payload instead of an
		// error; keep whatever generation is installed.
		c.failures.Inc()
		return nil, errors.New("refresh dataset: upstream returned no rows")
	}

	records = dataset.Clean(raws)
	c.install(records, c.now())
	c.refreshes.Inc()

	if c.snapshots != nil {
		sctx, scancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer scancel()
		if serr := c.snapshots.Save(sctx, records); serr != nil {
			log.Printf("op=cache.refresh msg=\"snapshot save failed\" err=%v", serr)
		}
	}

	return records, nil
}

func (c *DatasetCache) install(records []domain.RouteRecord, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &entry{records: records, fetchedAt: fetchedAt}
}
