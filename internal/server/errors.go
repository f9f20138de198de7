// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudVault Authors

package server

import "errors"

var (
	errNoListenAddress = errors.New("no gateway listen address configured")
)
