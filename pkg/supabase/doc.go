// Package supabase is a thin client for the hosted backend's REST surface:
// the PostgREST-style table API and the auth user endpoint.
//
// Queries are built fluently and executed with a context:
//
//	var projects []Project
//	err := client.From("projects").
//		Eq("approved", "true").
//		OrderDesc("created_at").
//		Range(0, 9).
//		Get(ctx, &projects)
//
// Failed calls surface *APIError carrying the machine-readable code from
// the backend. Codes are classified into sentinels so callers can branch
// with errors.Is: ErrDuplicate (unique violation), ErrInvalidReference
// (foreign key), ErrPermissionDenied and ErrCheckViolation (custom
// database validation).
package supabase
