// Copyright (c) 2026 HypeHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the time-ordered identifiers used as primary keys for
accounts, items, outfits and images.

Version 7 values sort by creation time, which keeps PostgreSQL B-tree inserts
append-only.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}
	return id.String()
}

// Normalize parses value and returns its canonical lowercase form.
func Normalize(value string) (string, bool) {
	id, err := uuid.Parse(value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}
