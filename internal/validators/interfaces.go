// SPDX-License-Identifier: Apache-2.0

package validators

// Validator checks an incoming payload against its field constraints.
// Implementations return an error wrapping [ErrValidation] describing the
// first violated constraint, or nil when the payload is acceptable.
type Validator interface {
	Validate(payload any) error
}
