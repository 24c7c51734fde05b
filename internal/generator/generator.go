// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import "strings"

// QueryPlaceholder marks where the raw query is interpolated into a
// template's context line. Plain string replacement is used instead of
// fmt verbs so queries containing '%' cannot corrupt the output.
const QueryPlaceholder = "{query}"

// =============================================================================
// RULE TYPE
// =============================================================================

// Rule associates a set of topic keywords with an executable-document
// template. Rules are immutable once the generator is constructed.
type Rule struct {
	// Topic names the rule for help text and debugging.
	Topic string

	// Keywords are tested by substring containment against the
	// lowercased query. Any single match selects this rule.
	Keywords []string

	// Template is the document body. Occurrences of QueryPlaceholder
	// are replaced with the raw query.
	Template string
}

// Matches reports whether the lowercased query contains any of the
// rule's keywords.
func (r Rule) Matches(queryLower string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(queryLower, kw) {
			return true
		}
	}
	return false
}

// =============================================================================
// GENERATOR TYPE
// =============================================================================

// Generator maps queries to executable documents via ordered first-match
// keyword rules.
type Generator struct {
	rules    []Rule
	fallback string
}

// New creates a generator with the built-in topic rules and fallback.
func New() *Generator {
	return NewWithRules(DefaultRules(), fallbackDocument)
}

// NewWithRules creates a generator with explicit rules and fallback.
// Rule order is significant: the first matching rule wins.
func NewWithRules(rules []Rule, fallback string) *Generator {
	return &Generator{rules: rules, fallback: fallback}
}

// Rules returns the generator's rules in match order.
func (g *Generator) Rules() []Rule {
	return g.rules
}

// Topics returns the topic names of all rules, in match order.
func (g *Generator) Topics() []string {
	topics := make([]string, 0, len(g.rules))
	for _, r := range g.rules {
		topics = append(topics, r.Topic)
	}
	return topics
}

// Generate returns the executable document for a query.
//
// The query is lowercased and tested against the rules in order; the
// first match has the raw query interpolated into its template. Queries
// matching no rule get the fixed fallback document, so the result is
// defined for every input including the empty string. Generate is
// referentially transparent: it mutates nothing and the same query
// always produces the same document.
func (g *Generator) Generate(query string) string {
	queryLower := strings.ToLower(query)

	for _, rule := range g.rules {
		if rule.Matches(queryLower) {
			return strings.ReplaceAll(rule.Template, QueryPlaceholder, query)
		}
	}

	return g.fallback
}
