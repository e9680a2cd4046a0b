// Package assistant answers visitor questions with canned responses matched
// by keyword. It is deliberately offline: no model calls, no external
// services, just an ordered rule list with a fallback reply.
package assistant
