// Package newsletter handles email signup for the site footer form.
// Addresses are stripped of markup, validated, rate limited per subscriber
// key, and stored in the newsletter_subscribers table.
package newsletter
