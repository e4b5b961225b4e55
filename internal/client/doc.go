// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless bookmark client runtime.
//
// It resolves the backend mode, runs the background workers and stops the
// process when a remote rejects the configured API token.
package client
