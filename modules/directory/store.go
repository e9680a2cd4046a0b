package directory

import (
	"context"
	"strconv"

	"github.com/maxwellbruno/abstractchainai/pkg/supabase"
)

const projectsTable = "projects"

// ListFilter narrows a feed page request. From and To are inclusive row
// offsets within the approved, newest-first listing.
type ListFilter struct {
	Category Category
	From     int
	To       int
}

// ProjectStore defines the persistence operations the directory needs.
type ProjectStore interface {
	// ListApproved returns approved projects ordered by creation time
	// descending, restricted to the filter's row range and, when set,
	// its category.
	ListApproved(ctx context.Context, filter ListFilter) ([]Project, error)

	// InsertProject persists a new submission.
	InsertProject(ctx context.Context, record ProjectRecord) error
}

// IdentityResolver resolves the identity behind an access token.
// *supabase.Client satisfies it.
type IdentityResolver interface {
	CurrentUser(ctx context.Context, accessToken string) (*supabase.User, error)
}

// SupabaseStore is the ProjectStore backed by the hosted REST API.
type SupabaseStore struct {
	client *supabase.Client
}

// NewSupabaseStore wraps a supabase client as a ProjectStore.
func NewSupabaseStore(client *supabase.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) ListApproved(ctx context.Context, filter ListFilter) ([]Project, error) {
	q := s.client.From(projectsTable).
		Eq("approved", strconv.FormatBool(true)).
		OrderDesc("created_at").
		Range(filter.From, filter.To)
	if filter.Category != "" {
		q = q.Eq("category", filter.Category.String())
	}

	var projects []Project
	if err := q.Get(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *SupabaseStore) InsertProject(ctx context.Context, record ProjectRecord) error {
	return s.client.Insert(ctx, projectsTable, record)
}
