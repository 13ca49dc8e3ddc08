/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package bbid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// bbidPattern is the canonical BBID form: lowercase hex in fixed
// 8-4-4-4-12 groups. Uppercase or braced/URN UUID forms are not valid
// BBIDs; use Parse to normalize them first.
var bbidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// IsValid reports whether s is a well-formed BBID. It is a pure check
// over the string; it never normalizes and never panics.
func IsValid(s string) bool {
	return bbidPattern.MatchString(s)
}

// Parse accepts any RFC 4122 textual UUID form and returns the canonical
// BBID (lowercase, dashed). It is the normalization boundary for values
// arriving from outside callers; IsValid deliberately stays strict.
func Parse(s string) (string, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid BBID %q: %w", s, err)
	}
	return strings.ToLower(u.String()), nil
}

// New mints a fresh random BBID.
func New() string {
	return uuid.NewString()
}
