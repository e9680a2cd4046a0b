package assistant

import "strings"

// Rule maps a set of trigger keywords to a reply. The first rule whose
// keyword appears in the lowercased question wins.
type Rule struct {
	Keywords []string
	Reply    string
}

// Responder answers questions from an ordered rule list, falling back to a
// default reply when nothing matches.
type Responder struct {
	rules    []Rule
	fallback string
}

// New creates a responder with the given rules and fallback reply.
func New(rules []Rule, fallback string) *Responder {
	return &Responder{rules: rules, fallback: fallback}
}

// Reply returns the answer for the question. Matching is case-insensitive
// substring search, in rule order.
func (r *Responder) Reply(question string) string {
	q := strings.ToLower(question)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(q, kw) {
				return rule.Reply
			}
		}
	}
	return r.fallback
}

// DefaultResponder ships the AbstractchainAI site answers.
func DefaultResponder() *Responder {
	return New([]Rule{
		{
			Keywords: []string{"abstract blockchain", "abstract chain"},
			Reply:    "Abstract is a high-performance blockchain network built on Ethereum's security, designed to enable consumer-facing applications. It provides fast transactions, low fees, and developer-friendly tools for building decentralized applications.",
		},
		{
			Keywords: []string{"abstractchainai", "platform"},
			Reply:    "AbstractchainAI is a platform that showcases innovative projects at the intersection of AI and blockchain technology. We connect developers, entrepreneurs, and visionaries to share groundbreaking solutions and collaborate on cutting-edge technologies.",
		},
		{
			Keywords: []string{"submit", "project"},
			Reply:    "You can submit your project to AbstractchainAI by filling out our submission form on the homepage. We review all submissions and feature approved projects that demonstrate innovation in AI and blockchain integration.",
		},
		{
			Keywords: []string{"how", "help"},
			Reply:    "I can help you with information about Abstract Blockchain technology, how to develop applications on Abstract, details about projects featured on AbstractchainAI, and guidance on submitting your own projects to our platform.",
		},
	}, "That's an interesting question! While I specialize in Abstract Blockchain and AbstractchainAI topics, I'd be happy to help you explore how AI and blockchain technologies can work together. Could you provide more specific details about what you'd like to know?")
}
