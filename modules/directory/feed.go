package directory

import (
	"context"
	"fmt"
	"sync"
)

// DefaultPageSize matches the public listing's window size.
const DefaultPageSize = 3

// Feed accumulates pages of the approved project listing, newest first.
// It keeps per-filter pagination state: changing the category resets the
// cursor and discards accumulated items so pages from incompatible filters
// are never mixed. All methods are safe for concurrent use; the internal
// mutex guarantees at most one fetch is in flight at a time.
type Feed struct {
	store    ProjectStore
	pageSize int

	mu       sync.Mutex
	category Category
	cursor   int
	items    []Project
	hasMore  bool
}

// FeedOption configures a Feed.
type FeedOption func(*Feed)

// WithPageSize overrides the default page size.
func WithPageSize(size int) FeedOption {
	return func(f *Feed) {
		if size > 0 {
			f.pageSize = size
		}
	}
}

// NewFeed creates a feed over the given store.
func NewFeed(store ProjectStore, opts ...FeedOption) (*Feed, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	f := &Feed{
		store:    store,
		pageSize: DefaultPageSize,
		hasMore:  true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// FetchPage loads the next page window and appends it to the accumulated
// items. It returns the newly fetched page. The cursor advances only on
// success, so a failed fetch can be retried for the same window. When the
// feed is exhausted it returns an empty page and HasMore turns false.
func (f *Feed) FetchPage(ctx context.Context) ([]Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.hasMore {
		return nil, nil
	}

	from := f.cursor * f.pageSize
	to := from + f.pageSize - 1

	page, err := f.store.ListApproved(ctx, ListFilter{
		Category: f.category,
		From:     from,
		To:       to,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch projects page %d: %w", f.cursor, err)
	}

	f.cursor++
	f.hasMore = len(page) == f.pageSize
	f.items = append(f.items, page...)
	return page, nil
}

// SetCategory switches the feed's category filter. Passing a different
// category resets the cursor and clears accumulated items; setting the
// current category again is a no-op. An empty category means all categories.
func (f *Feed) SetCategory(category Category) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.category == category {
		return
	}
	f.category = category
	f.cursor = 0
	f.items = nil
	f.hasMore = true
}

// Items returns a copy of all projects accumulated so far.
func (f *Feed) Items() []Project {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Project, len(f.items))
	copy(out, f.items)
	return out
}

// HasMore reports whether another page may exist.
func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hasMore
}

// Category returns the currently active category filter.
func (f *Feed) Category() Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.category
}
