package store

import (
	"context"
	"net/http"
	"sync"

	logrus "github.com/sirupsen/logrus"

	"github.com/mighty-stack/swiftship/internal/api"
)

// Record is anything a collection can cache. The id is server-assigned and
// unique within a collection; the client never invents one.
type Record interface {
	RecordID() string
}

// Snapshot is the read model a view renders: a copy of the cached items, the
// current selection, and the request lifecycle flags.
type Snapshot[T Record] struct {
	Items     []T
	Selected  *T
	Pending   bool
	LastError string
}

// Collection is the generic resource store behind jobs, shipments, earnings,
// users and drivers. Each instance caches one backend collection and runs
// every operation through the pending -> fulfilled/rejected lifecycle:
// entering pending clears the previous error, a rejection records the server
// message (or the operation's fallback) and leaves items/selected untouched.
//
// Operations are not deduplicated or sequenced. Two overlapping calls race
// and the last response to resolve wins the final state.
type Collection[T Record] struct {
	api  *api.Client
	name string

	mu        sync.Mutex
	items     []T
	selected  *T
	pending   bool
	lastError string

	// onReplace runs under the store lock after a successful fetchAll, for
	// stores that derive aggregates from the full item set.
	onReplace func(items []T)
}

func newCollection[T Record](client *api.Client, name string) *Collection[T] {
	return &Collection[T]{api: client, name: name}
}

// Snapshot returns a copy of the current state. The items slice is cloned so
// a view can iterate while operations keep resolving.
func (c *Collection[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot[T]{
		Items:     make([]T, len(c.items)),
		Pending:   c.pending,
		LastError: c.lastError,
	}
	copy(snap.Items, c.items)
	if c.selected != nil {
		sel := *c.selected
		snap.Selected = &sel
	}
	return snap
}

// Selected returns the current selection, or nil.
func (c *Collection[T]) Selected() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	sel := *c.selected
	return &sel
}

// ClearSelected drops the current selection, e.g. when a detail view closes.
func (c *Collection[T]) ClearSelected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = nil
}

func (c *Collection[T]) begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = true
	c.lastError = ""
}

func (c *Collection[T]) reject(err error, fallback string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	c.lastError = failureMessage(err, fallback)
	logrus.WithError(err).WithField("store", c.name).Debug(fallback)
}

// fetchAll replaces the cached items wholesale with the server payload.
func (c *Collection[T]) fetchAll(ctx context.Context, path, fallback string) error {
	c.begin()

	var result []T
	if err := c.api.Get(ctx, path, &result); err != nil {
		c.reject(err, fallback)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	c.lastError = ""
	c.items = result
	if c.onReplace != nil {
		c.onReplace(c.items)
	}
	return nil
}

// fetchOne loads a single record into the selection. The cached items are
// not touched; the selection need not be a member of them.
func (c *Collection[T]) fetchOne(ctx context.Context, path, fallback string) error {
	c.begin()

	var result T
	if err := c.api.Get(ctx, path, &result); err != nil {
		c.reject(err, fallback)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	c.lastError = ""
	c.selected = &result
	return nil
}

// apply runs a mutating call and reconciles the returned record: it becomes
// the new selection and replaces the matching item by id. When no item
// matches, insertIfMissing decides whether the record is prepended (newly
// created shipments/earnings) or left out of the cache (jobs/users).
func (c *Collection[T]) apply(ctx context.Context, method, path string, body any, insertIfMissing bool, fallback string) (T, error) {
	var zero T
	c.begin()

	var result T
	var err error
	switch method {
	case http.MethodPost:
		err = c.api.Post(ctx, path, body, &result)
	case http.MethodPut:
		err = c.api.Put(ctx, path, body, &result)
	default:
		err = c.api.Get(ctx, path, &result)
	}
	if err != nil {
		c.reject(err, fallback)
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	c.lastError = ""
	c.selected = &result

	for i := range c.items {
		if c.items[i].RecordID() == result.RecordID() {
			c.items[i] = result
			return result, nil
		}
	}
	if insertIfMissing {
		c.items = append([]T{result}, c.items...)
	}
	return result, nil
}

// remove deletes the record server-side and drops it from the cached items.
// The selection is left alone.
func (c *Collection[T]) remove(ctx context.Context, path, id, fallback string) error {
	c.begin()

	if err := c.api.Delete(ctx, path); err != nil {
		c.reject(err, fallback)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
	c.lastError = ""
	kept := c.items[:0]
	for _, item := range c.items {
		if item.RecordID() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	return nil
}

// failureMessage prefers the server-supplied error text and falls back to a
// per-operation string for transport failures.
func failureMessage(err error, fallback string) string {
	if apiErr, ok := err.(*api.Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
