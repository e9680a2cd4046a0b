// Package directory implements the project directory domain: the Project
// record, the paginated public feed, and the submission pipeline that
// validates, rate-limits, uploads, and persists user-submitted projects.
//
// The package composes the leaf pkg packages (sanitizer, validator,
// ratelimit, csrf, upload, blob, supabase) behind two entry points:
// Feed for reading the approved listing, and SubmissionService for writes.
// Storage is abstracted behind the ProjectStore interface so tests can run
// against counting doubles without any network.
package directory
