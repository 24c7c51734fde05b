// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package document parses and validates executable Markdown documents.
//
// An executable document is ordinary Markdown whose fenced code blocks
// carry a language tag (bash, yaml) and are meant to be run in order by
// a document runner. This package extracts those blocks, checks that
// every fence is balanced and tagged, and exposes the command content
// for export and display.
package document
