// Package validator provides small composable validation rules for
// user-submitted form data.
//
// Rules are plain values combining a predicate with the error to report when
// the predicate fails. Apply runs a set of rules and returns the collected
// ValidationErrors, or nil when everything passed:
//
//	err := validator.Apply(
//		validator.Required("name", input.Name),
//		validator.LenBetween("name", input.Name, 3, 100),
//		validator.ValidURLWithScheme("website", input.Website, "http", "https"),
//	)
//
// The bare predicates IsEmail and IsURL are exported for callers that only
// need a boolean answer.
package validator
