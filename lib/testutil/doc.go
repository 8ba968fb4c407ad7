// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for switchboard
// packages.
//
// [WriteFile] places a file with the given content in a fresh
// temporary directory and returns its path; tables and configuration
// files under test are written this way. [DirNames] lists a
// directory, for tests that check what a cache wrote.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no switchboard-internal dependencies.
package testutil
