/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package model

import "errors"

var (
	// ErrKeyNotFound is returned when a category, color, or item id is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidStructure is returned when a payload cannot form a report tree.
	ErrInvalidStructure = errors.New("invalid report structure")

	// ErrDuplicateID is returned when two items share an id.
	ErrDuplicateID = errors.New("duplicate item id")
)
