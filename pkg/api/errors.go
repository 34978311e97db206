// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigMalformed is wrapped by every error raised for a structurally
	// invalid declaration: a missing required field, a wrong shape or a value
	// outside its allowed set.
	ErrConfigMalformed = errors.New("configuration malformed")
	// ErrReferential is wrapped by every error raised when a symbolic
	// reference from the site configuration into the navigation tree
	// does not resolve.
	ErrReferential = errors.New("referential integrity violated")
)

// MalformedError describes a single violation of the declaration rules
type MalformedError struct {
	// Field is the dotted path of the offending element, e.g.
	// `themeConfig.navbar.items[1].position`
	Field  string
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrConfigMalformed, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrConfigMalformed, e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrConfigMalformed) hold
func (e *MalformedError) Unwrap() error {
	return ErrConfigMalformed
}

func malformed(field string, format string, args ...interface{}) error {
	return &MalformedError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ReferenceError reports a navbar item referencing a sidebar
// that is not declared in the navigation tree
type ReferenceError struct {
	SidebarID string
	// Item is the index of the referencing entry in themeConfig.navbar.items
	Item int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: themeConfig.navbar.items[%d] references sidebar %q which is not declared", ErrReferential, e.Item, e.SidebarID)
}

// Unwrap makes errors.Is(err, ErrReferential) hold
func (e *ReferenceError) Unwrap() error {
	return ErrReferential
}
