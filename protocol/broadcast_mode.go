// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"encoding/json"
	"fmt"
	"strings"
)

// BroadcastMode selects how much chain-side confirmation a broadcast waits
// for before returning.
type BroadcastMode uint8

const (
	// BroadcastUnset falls back to the client's default mode.
	BroadcastUnset BroadcastMode = iota

	// BroadcastAsync returns as soon as the node accepts the request.
	BroadcastAsync

	// BroadcastSync returns after the mempool admission check.
	BroadcastSync

	// BroadcastCommit returns after the transaction is included in a block.
	BroadcastCommit
)

func BroadcastModeByName(s string) BroadcastMode {
	switch strings.ToLower(s) {
	case "async":
		return BroadcastAsync
	case "sync":
		return BroadcastSync
	case "commit":
		return BroadcastCommit
	default:
		return BroadcastUnset
	}
}

func (m BroadcastMode) String() string {
	switch m {
	case BroadcastAsync:
		return "async"
	case BroadcastSync:
		return "sync"
	case BroadcastCommit:
		return "commit"
	default:
		return fmt.Sprintf("BroadcastMode:%d", uint8(m))
	}
}

// Method returns the RPC method for the mode.
func (m BroadcastMode) Method() string {
	switch m {
	case BroadcastAsync:
		return "broadcast_tx_async"
	case BroadcastSync:
		return "broadcast_tx_sync"
	case BroadcastCommit:
		return "broadcast_tx_commit"
	default:
		return ""
	}
}

func (m BroadcastMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *BroadcastMode) UnmarshalJSON(b []byte) error {
	var s *string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}
	if s == nil {
		*m = BroadcastUnset
		return nil
	}

	*m = BroadcastModeByName(*s)
	if *m == BroadcastUnset {
		return fmt.Errorf("invalid broadcast mode: %q", *s)
	}
	return nil
}
