package directory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwellbruno/abstractchainai/modules/directory"
)

// fakeStore serves pages from a fixed project list and counts calls.
type fakeStore struct {
	mu       sync.Mutex
	projects map[directory.Category][]directory.Project
	all      []directory.Project
	listErr  error

	listCalls   int
	insertCalls int
	inserted    []directory.ProjectRecord
	insertErr   error
}

func (s *fakeStore) ListApproved(_ context.Context, f directory.ListFilter) ([]directory.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}

	source := s.all
	if f.Category != "" {
		source = s.projects[f.Category]
	}
	if f.From >= len(source) {
		return nil, nil
	}
	to := f.To + 1
	if to > len(source) {
		to = len(source)
	}
	return source[f.From:to], nil
}

func (s *fakeStore) InsertProject(_ context.Context, rec directory.ProjectRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertCalls++
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, rec)
	return nil
}

func makeProjects(n int, category directory.Category) []directory.Project {
	out := make([]directory.Project, n)
	for i := range out {
		out[i] = directory.Project{
			ID:        fmt.Sprintf("id-%s-%d", category, i),
			Name:      fmt.Sprintf("Project %d", i),
			Category:  category,
			Approved:  true,
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour),
		}
	}
	return out
}

func TestFeed_FetchPage(t *testing.T) {
	t.Parallel()

	store := &fakeStore{all: makeProjects(4, directory.CategoryDeFi)}
	feed, err := directory.NewFeed(store)
	require.NoError(t, err)

	ctx := context.Background()

	page, err := feed.FetchPage(ctx)
	require.NoError(t, err)
	assert.Len(t, page, 3)
	assert.True(t, feed.HasMore(), "a fourth item exists")
	assert.Equal(t, "id-defi-0", page[0].ID)

	page, err = feed.FetchPage(ctx)
	require.NoError(t, err)
	assert.Len(t, page, 1)
	assert.False(t, feed.HasMore())
	assert.Len(t, feed.Items(), 4)

	// Exhausted feed does not hit the store again.
	calls := store.listCalls
	page, err = feed.FetchPage(ctx)
	require.NoError(t, err)
	assert.Empty(t, page)
	assert.Equal(t, calls, store.listCalls)
}

func TestFeed_SetCategoryResetsState(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		all: makeProjects(3, directory.CategoryDeFi),
		projects: map[directory.Category][]directory.Project{
			directory.CategoryGaming: makeProjects(2, directory.CategoryGaming),
		},
	}
	feed, err := directory.NewFeed(store)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = feed.FetchPage(ctx)
	require.NoError(t, err)
	require.Len(t, feed.Items(), 3)

	feed.SetCategory(directory.CategoryGaming)
	assert.Empty(t, feed.Items(), "filter change clears accumulated items")
	assert.True(t, feed.HasMore())

	page, err := feed.FetchPage(ctx)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	for _, p := range page {
		assert.Equal(t, directory.CategoryGaming, p.Category)
	}

	// Re-setting the same category keeps state.
	feed.SetCategory(directory.CategoryGaming)
	assert.Len(t, feed.Items(), 2)
}

func TestFeed_CursorHoldsOnError(t *testing.T) {
	t.Parallel()

	store := &fakeStore{all: makeProjects(3, directory.CategoryNFT)}
	feed, err := directory.NewFeed(store)
	require.NoError(t, err)

	ctx := context.Background()
	store.listErr = errors.New("upstream down")

	_, err = feed.FetchPage(ctx)
	require.Error(t, err)
	assert.Empty(t, feed.Items())

	// Retry succeeds against the same window.
	store.listErr = nil
	page, err := feed.FetchPage(ctx)
	require.NoError(t, err)
	assert.Len(t, page, 3)
}

func TestFeed_ConcurrentFetchNoDuplicates(t *testing.T) {
	t.Parallel()

	store := &fakeStore{all: makeProjects(6, directory.CategorySocial)}
	feed, err := directory.NewFeed(store)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = feed.FetchPage(context.Background())
		}()
	}
	wg.Wait()

	items := feed.Items()
	assert.Len(t, items, 6)
	seen := map[string]bool{}
	for _, p := range items {
		assert.False(t, seen[p.ID], "project %s appended twice", p.ID)
		seen[p.ID] = true
	}
}

func TestFeed_PageSizeOption(t *testing.T) {
	t.Parallel()

	store := &fakeStore{all: makeProjects(5, directory.CategoryTooling)}
	feed, err := directory.NewFeed(store, directory.WithPageSize(5))
	require.NoError(t, err)

	page, err := feed.FetchPage(context.Background())
	require.NoError(t, err)
	assert.Len(t, page, 5)
	assert.True(t, feed.HasMore(), "a full page leaves hasMore set")
}

func TestNewFeed_NilStore(t *testing.T) {
	t.Parallel()

	_, err := directory.NewFeed(nil)
	assert.ErrorIs(t, err, directory.ErrStoreRequired)
}

func TestCategory_Valid(t *testing.T) {
	t.Parallel()

	for _, c := range directory.Categories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, directory.Category("metaverse").Valid())
	assert.False(t, directory.Category("").Valid())
}
