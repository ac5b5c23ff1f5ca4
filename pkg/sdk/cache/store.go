// Package cache holds the most recently fetched value per query key, collapses
// concurrent fetches of the same key into one remote call and notifies
// subscribers when an entry changes or goes stale.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("cache: store closed")

// Key addresses one cache entry: an entity kind plus its parameter (empty
// for parameterless reads such as the course list).
type Key struct {
	Kind  string
	Param string
}

func (k Key) String() string {
	if k.Param == "" {
		return k.Kind
	}
	return k.Kind + "/" + k.Param
}

// Freshness reports whether a stored value may be served without a fetch.
type Freshness int

const (
	Stale Freshness = iota
	Fresh
)

func (f Freshness) String() string {
	if f == Fresh {
		return "fresh"
	}
	return "stale"
}

// EventKind distinguishes the notifications a subscriber receives.
type EventKind int

const (
	Updated EventKind = iota
	Invalidated
)

func (k EventKind) String() string {
	if k == Invalidated {
		return "invalidated"
	}
	return "updated"
}

// Event is delivered to subscribers of Key. Value is set for Updated only.
type Event struct {
	Key   Key
	Kind  EventKind
	Value any
}

type entry struct {
	value any
	has   bool
	fresh bool
	// gen increases on every Write and Invalidate. A fetch commits only if
	// gen is unchanged since it started.
	gen  uint64
	call *call
}

// call is one in-flight fetch shared by every reader that joins it.
type call struct {
	done chan struct{}
	gen  uint64
	val  any
	err  error
}

type subscription struct {
	ch   chan Event
	once sync.Once
}

func (s *subscription) close() {
	s.once.Do(func() { close(s.ch) })
}

// deliver replaces any undelivered event so slow subscribers only ever see
// the latest state.
func (s *subscription) deliver(ev Event) {
	select {
	case s.ch <- ev:
		return
	default:
	}
	select {
	case <-s.ch:
	default:
	}
	select {
	case s.ch <- ev:
	default:
	}
}

// Store is a keyed cache owned by one application session. Construct it with
// New, share it between readers, and Close it at sign-out. Entries are never
// evicted while the store is open.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	subs    map[Key]map[*subscription]struct{}
	closed  bool

	metrics *storeMetrics
}

// Option configures a Store.
type Option func(*options)

type options struct {
	meterProvider metric.MeterProvider
}

// WithMeterProvider records cache metrics on provider instead of the global one.
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = provider
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	var o options
	for _, fn := range opts {
		fn(&o)
	}

	m, err := newStoreMetrics(o.meterProvider)
	if err != nil {
		log.Printf("cache: metrics disabled: %v", err)
		m, _ = newStoreMetrics(noop.NewMeterProvider())
	}

	return &Store{
		entries: make(map[Key]*entry),
		subs:    make(map[Key]map[*subscription]struct{}),
		metrics: m,
	}
}

// Read returns the stored value for key without fetching. ok is false when
// nothing has been stored yet.
func (s *Store) Read(key Key) (value any, ok bool, freshness Freshness) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, found := s.entries[key]
	if s.closed || !found || !e.has {
		return nil, false, Stale
	}
	if e.fresh {
		return e.value, true, Fresh
	}
	return e.value, true, Stale
}

// Write replaces the value for key, marks it fresh and notifies subscribers.
// A fetch that was in flight when Write happened will not overwrite it.
func (s *Store) Write(key Key, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	e := s.entryLocked(key)
	e.gen++
	e.value = value
	e.has = true
	e.fresh = true
	s.notifyLocked(Event{Key: key, Kind: Updated, Value: value})
	return nil
}

// Invalidate marks key stale so the next Fetch goes to the remote side. It
// never fetches by itself.
func (s *Store) Invalidate(key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.invalidateLocked(key)
	return nil
}

// InvalidateKind marks every key of the given kind stale, whatever its param.
func (s *Store) InvalidateKind(kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	for key := range s.entries {
		if key.Kind == kind {
			s.invalidateLocked(key)
		}
	}
	return nil
}

func (s *Store) invalidateLocked(key Key) {
	e, ok := s.entries[key]
	if !ok {
		return
	}
	// Bump even when already stale so an in-flight fetch cannot commit.
	e.gen++
	e.fresh = false
	s.metrics.record(s.metrics.invalidations, key)
	s.notifyLocked(Event{Key: key, Kind: Invalidated})
}

// Subscribe returns a channel of events for key and a function that ends the
// subscription. The channel holds at most one pending event; an undelivered
// event is replaced by a newer one. The channel is closed by cancel or Close.
func (s *Store) Subscribe(key Key) (<-chan Event, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, nil, ErrClosed
	}

	sub := &subscription{ch: make(chan Event, 1)}
	if s.subs[key] == nil {
		s.subs[key] = make(map[*subscription]struct{})
	}
	s.subs[key][sub] = struct{}{}

	cancel := func() {
		s.mu.Lock()
		if set, ok := s.subs[key]; ok {
			delete(set, sub)
			if len(set) == 0 {
				delete(s.subs, key)
			}
		}
		s.mu.Unlock()
		sub.close()
	}
	return sub.ch, cancel, nil
}

// Close drops every entry and ends every subscription. Fetches still in
// flight finish for their waiters but are not stored.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	for _, set := range s.subs {
		for sub := range set {
			sub.close()
		}
	}
	s.subs = nil
	s.entries = nil
	return nil
}

// Closed reports whether Close has been called.
func (s *Store) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Store) entryLocked(key Key) *entry {
	e, ok := s.entries[key]
	if !ok {
		e = &entry{}
		s.entries[key] = e
	}
	return e
}

func (s *Store) notifyLocked(ev Event) {
	for sub := range s.subs[ev.Key] {
		sub.deliver(ev)
	}
}

// Fetch returns the value for key, calling fn only when the entry is missing
// or stale. At most one fn runs per key at any time; concurrent callers wait
// for it and share its result. When the key is invalidated while fn runs,
// later callers wait for that call to land and then start a new one.
//
// fn runs detached from ctx: if ctx ends first, Fetch returns ctx.Err() and
// the result is still stored when it arrives. Errors from fn are returned
// unchanged and never stored.
func Fetch[T any](ctx context.Context, s *Store, key Key, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	missed := false

	for {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return zero, ErrClosed
		}

		e := s.entryLocked(key)
		if e.has && e.fresh {
			value := e.value
			s.mu.Unlock()
			if !missed {
				s.metrics.record(s.metrics.hits, key)
			}
			return valueAs[T](key, value)
		}

		if !missed {
			missed = true
			s.metrics.record(s.metrics.misses, key)
		}

		c := e.call
		if c == nil {
			c = &call{done: make(chan struct{}), gen: e.gen}
			e.call = c
			s.metrics.record(s.metrics.fetches, key)
			go s.run(context.WithoutCancel(ctx), key, c, func(ctx context.Context) (any, error) {
				return fn(ctx)
			})
		}
		superseded := c.gen != e.gen
		s.mu.Unlock()

		select {
		case <-c.done:
		case <-ctx.Done():
			return zero, ctx.Err()
		}

		if superseded {
			continue
		}
		if c.err != nil {
			return zero, c.err
		}
		return valueAs[T](key, c.val)
	}
}

func (s *Store) run(ctx context.Context, key Key, c *call, fn func(context.Context) (any, error)) {
	val, err := func() (val any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("cache: fetch of %s panicked: %v", key, r)
			}
		}()
		return fn(ctx)
	}()

	s.mu.Lock()
	c.val, c.err = val, err
	if !s.closed {
		if e, ok := s.entries[key]; ok {
			if e.call == c {
				e.call = nil
			}
			if err == nil && e.gen == c.gen {
				e.value = val
				e.has = true
				e.fresh = true
				s.notifyLocked(Event{Key: key, Kind: Updated, Value: val})
			}
		}
	}
	s.mu.Unlock()

	close(c.done)
}

func valueAs[T any](key Key, value any) (T, error) {
	if value == nil {
		var zero T
		return zero, nil
	}
	v, ok := value.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache: %s holds %T", key, value)
	}
	return v, nil
}
