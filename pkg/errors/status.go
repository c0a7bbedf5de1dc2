// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// OK means the request succeeded.
	OK Status = 200

	// BadRequest means the request was invalid, such as an empty signer name
	// or password.
	BadRequest Status = 400

	// Unauthenticated means key decryption failed, such as a wrong password.
	Unauthenticated Status = 401

	// NotFound means a requested record, such as a named key, does not exist.
	NotFound Status = 404

	// UnknownType means a message type tag is not part of the known set.
	UnknownType Status = 405

	// CheckFailed means the node's mempool admission check rejected the
	// transaction.
	CheckFailed Status = 409

	// DeliverFailed means the transaction was admitted but failed during
	// block execution.
	DeliverFailed Status = 412

	// UnknownError means the error is not part of this taxonomy.
	UnknownError Status = 500

	// EncodingError means encoding or decoding failed.
	EncodingError Status = 501

	// Misconfigured means the client was constructed without a required
	// capability. This is fatal and indicates a misconfigured host, not a
	// recoverable runtime state.
	Misconfigured Status = 502

	// NetworkError means the transport failed before a chain response was
	// received.
	NetworkError Status = 503

	// InternalError means an internal invariant was violated.
	InternalError Status = 504
)

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 300 }

// IsKnownError returns true if the status is non-zero and not UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

// IsClientError returns true if the status is a client error.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError returns true if the status is a server error.
func (s Status) IsServerError() bool { return s >= 500 }

// Error implements error.
func (s Status) Error() string { return s.String() }

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case BadRequest:
		return "badRequest"
	case Unauthenticated:
		return "unauthenticated"
	case NotFound:
		return "notFound"
	case UnknownType:
		return "unknownType"
	case CheckFailed:
		return "checkFailed"
	case DeliverFailed:
		return "deliverFailed"
	case UnknownError:
		return "unknownError"
	case EncodingError:
		return "encodingError"
	case Misconfigured:
		return "misconfigured"
	case NetworkError:
		return "networkError"
	case InternalError:
		return "internalError"
	default:
		return fmt.Sprintf("Status:%d", uint64(s))
	}
}

// StatusByName returns the named status.
func StatusByName(name string) (Status, bool) {
	switch strings.ToLower(name) {
	case "ok":
		return OK, true
	case "badrequest":
		return BadRequest, true
	case "unauthenticated":
		return Unauthenticated, true
	case "notfound":
		return NotFound, true
	case "unknowntype":
		return UnknownType, true
	case "checkfailed":
		return CheckFailed, true
	case "deliverfailed":
		return DeliverFailed, true
	case "unknownerror":
		return UnknownError, true
	case "encodingerror":
		return EncodingError, true
	case "misconfigured":
		return Misconfigured, true
	case "networkerror":
		return NetworkError, true
	case "internalerror":
		return InternalError, true
	default:
		return 0, false
	}
}

// MarshalJSON marshals the status as a string.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON unmarshals the status from a string or a number.
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		v, ok := StatusByName(str)
		if !ok {
			return fmt.Errorf("invalid status %q", str)
		}
		*s = v
		return nil
	}

	var num uint64
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = Status(num)
	return nil
}
