// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package errors implements a status-coded error type shared by every
// package in this module. Statuses classify failures the way a caller
// handles them, not the way they were produced.
package errors

// Status is a request status code.
type Status uint64
