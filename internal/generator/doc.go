// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package generator produces executable documents from natural-language
// queries.
//
// Generation is deliberately rule-based, not model-based: the query is
// lowercased and tested against an ordered list of topic rules, and the
// first rule whose keywords match wins. The same query therefore always
// yields the same document, which keeps the generator trivially testable
// and its output explainable. Queries that match no rule resolve to a
// fixed fallback document listing the supported topics: an unmatched
// query is never an error.
//
// The Generator is a value constructed once and injected into whichever
// surface needs it (TUI session, REPL, one-shot CLI). Its interface is a
// plain string -> string function, so a future backend could be swapped
// in without touching any caller.
package generator
