// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes executable documents and session transcripts to
// disk as Markdown files.
//
// Every exported file opens with a metadata comment identifying the
// session, the environment it was produced in, and the export time, so
// a document runner's output can be traced back to the session that
// generated it.
package export
