// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the kubedoc application.
//
// Everything in this package is dependency-light and safe to use from any
// layer: string handling here is rune-aware so UTF-8 input (including CJK
// queries) is never corrupted by truncation.
package util
