// Copyright 2025 The Meridian Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package protocol defines the transaction types of the Meridian chain: the
// closed set of message variants, the unsigned and signed transaction
// envelopes, the canonical sign document, and the enums and primitives they
// are built from.
package protocol

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"

	"gitlab.com/meridianhub/meridian-sdk/pkg/errors"
)

// reDenom matches a token denomination: a lower-case letter followed by 2 to
// 127 lower-case letters, digits, or separators.
var reDenom = regexp.MustCompile(`^[a-z][a-z0-9/\-]{2,127}$`)

// IsValidDenom returns true if the string is a well-formed denomination.
func IsValidDenom(s string) bool { return reDenom.MatchString(s) }

// NewValidator constructs a validator for protocol types. The `denom` tag
// validates token denominations. Empty strings are allowed so that `required`
// stays responsible for presence.
func NewValidator() (*validator.Validate, error) {
	v := validator.New()
	err := v.RegisterValidation("denom", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			panic(fmt.Errorf("%q is not a string", fl.FieldName()))
		}

		s := fl.Field().String()
		if len(s) == 0 {
			// allow empty
			return true
		}

		return IsValidDenom(s)
	})
	return v, err
}

var validate = func() *validator.Validate {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}()

// validateFields runs struct-tag validation for a message, converting the
// validator's error into a status-coded one.
func validateFields(m interface{}) error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	return errors.BadRequest.WithCauseAndFormat(err, "invalid %T", m)
}
