// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

// Package client implements the client application runtime.
//
// It wires the service layer, the request-intercepting gateway, and the
// background workers into a single process lifecycle.
package client
