// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for switchboard.
//
// Configuration is loaded from a single file named by either the
// SWITCHBOARD_CONFIG environment variable (via [Load]) or a --config
// flag (via [LoadFile]). There is no file discovery: without either,
// callers use [Default]. Values in the file are merged over the
// defaults.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${SWITCHBOARD_CACHE}, and ${VAR:-default} patterns are
// expanded. No other environment variables override config values.
//
// This package depends on no other switchboard packages.
package config
