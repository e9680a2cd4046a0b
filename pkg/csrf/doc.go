// Package csrf manages per-session anti-forgery tokens for protected forms.
//
// A Manager generates a cryptographically random token, keeps it in a
// session-scoped key-value store under a fixed key (one active token per
// form), and verifies candidates in constant time. Tokens are single-use by
// convention: call Rotate after every successful submission so a replayed
// token no longer validates.
//
//	manager, _ := csrf.New(store)
//	token, _ := manager.Generate(ctx)   // render into the form
//	...
//	ok, _ := manager.Validate(ctx, candidate)
//	if ok {
//		_, _ = manager.Rotate(ctx)
//	}
//
// This is an advisory client-side control. Anyone calling the backend API
// directly bypasses it entirely; the authoritative anti-forgery check is the
// backend's responsibility and out of scope here.
package csrf
