package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxwellbruno/abstractchainai/pkg/supabase"
)

type row struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newClient(t *testing.T, handler http.HandlerFunc) *supabase.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := supabase.New(supabase.Config{URL: srv.URL, APIKey: "anon-key"})
	require.NoError(t, err)
	return client
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := supabase.New(supabase.Config{URL: "https://x.supabase.co"})
	assert.ErrorIs(t, err, supabase.ErrInvalidConfig)

	_, err = supabase.New(supabase.Config{APIKey: "k"})
	assert.ErrorIs(t, err, supabase.ErrInvalidConfig)
}

func TestQuery_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("builds filter order and range", func(t *testing.T) {
		t.Parallel()

		var gotQuery, gotRange, gotRangeUnit, gotAPIKey string
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			gotRange = r.Header.Get("Range")
			gotRangeUnit = r.Header.Get("Range-Unit")
			gotAPIKey = r.Header.Get("apikey")

			assert.Equal(t, "/rest/v1/projects", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]row{{ID: "1", Name: "one"}})
		})

		var rows []row
		err := client.From("projects").
			Eq("approved", "true").
			Eq("category", "defi").
			OrderDesc("created_at").
			Range(0, 2).
			Get(ctx, &rows)
		require.NoError(t, err)

		assert.Contains(t, gotQuery, "approved=eq.true")
		assert.Contains(t, gotQuery, "category=eq.defi")
		assert.Contains(t, gotQuery, "order=created_at.desc")
		assert.Equal(t, "0-2", gotRange)
		assert.Equal(t, "items", gotRangeUnit)
		assert.Equal(t, "anon-key", gotAPIKey)
		require.Len(t, rows, 1)
		assert.Equal(t, "one", rows[0].Name)
	})

	t.Run("error body decoded", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"code":"42501","message":"permission denied for table projects"}`))
		})

		var rows []row
		err := client.From("projects").Get(ctx, &rows)
		require.Error(t, err)
		assert.ErrorIs(t, err, supabase.ErrPermissionDenied)

		var apiErr *supabase.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "42501", apiErr.Code)
		assert.Contains(t, apiErr.Message, "permission denied")
	})
}

func TestClient_Insert(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("posts record with minimal return", func(t *testing.T) {
		t.Parallel()

		var gotBody row
		var gotPrefer string
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/rest/v1/projects", r.URL.Path)
			gotPrefer = r.Header.Get("Prefer")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.WriteHeader(http.StatusCreated)
		})

		err := client.Insert(ctx, "projects", row{Name: "new project"})
		require.NoError(t, err)
		assert.Equal(t, "return=minimal", gotPrefer)
		assert.Equal(t, "new project", gotBody.Name)
	})

	t.Run("error codes classified", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			status   int
			body     string
			sentinel error
		}{
			{"duplicate", http.StatusConflict, `{"code":"23505","message":"duplicate key"}`, supabase.ErrDuplicate},
			{"invalid reference", http.StatusConflict, `{"code":"23503","message":"fk violation"}`, supabase.ErrInvalidReference},
			{"permission denied", http.StatusForbidden, `{"code":"42501","message":"denied"}`, supabase.ErrPermissionDenied},
			{"check violation", http.StatusBadRequest, `{"code":"P0001","message":"name too short"}`, supabase.ErrCheckViolation},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.status)
					_, _ = w.Write([]byte(tt.body))
				})

				err := client.Insert(ctx, "projects", row{})
				assert.ErrorIs(t, err, tt.sentinel)
			})
		}
	})

	t.Run("unparseable error body still typed", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("<html>bad gateway</html>"))
		})

		err := client.Insert(ctx, "projects", row{})
		var apiErr *supabase.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	})
}

func TestClient_CurrentUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("authenticated", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/v1/user", r.URL.Path)
			assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(supabase.User{ID: "user-1", Email: "u@example.com"})
		})

		user, err := client.CurrentUser(ctx, "user-token")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		_, err := client.CurrentUser(ctx, "")
		assert.ErrorIs(t, err, supabase.ErrNoSession)
	})

	t.Run("rejected token", func(t *testing.T) {
		t.Parallel()

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		_, err := client.CurrentUser(ctx, "expired")
		assert.ErrorIs(t, err, supabase.ErrNoSession)
	})
}
