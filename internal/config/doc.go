// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// kubedoc.
//
// Configuration is TOML with sensible defaults, environment variable
// overrides, and validation. The file lives at ~/.kubedoc/config.toml;
// a missing file is not an error, it just yields the defaults.
package config
