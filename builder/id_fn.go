// SPDX-License-Identifier: MIT
// Package: genregraph/builder
//
// id_fn.go — naming schemes for artists and genres.

package builder

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// IDFn names the idx-th artist (or genre). It must be pure and idx is never negative.
type IDFn func(idx int) string

// Scheme names accepted by ParseIDScheme.
const (
	SchemeNumbered = "numbered"
	SchemeLetters  = "letters"
	SchemeIndex    = "index"
)

// Index names by decimal position: "0", "1", ….
func Index(idx int) string {
	return strconv.Itoa(idx)
}

// Letters names in spreadsheet-column order: "A".."Z", "AA", "AB", ….
// It never runs out, so it is safe for any artist count.
func Letters(idx int) string {
	buf := make([]byte, 0, 4)
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// Numbered names as prefix + decimal position, e.g. Numbered("artist")(7) == "artist7".
func Numbered(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ParseIDScheme maps a scheme name (case-insensitive) to an IDFn. prefix is
// used by SchemeNumbered only. The empty name selects SchemeNumbered.
func ParseIDScheme(name, prefix string) (IDFn, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SchemeNumbered:
		return Numbered(prefix), nil
	case SchemeLetters:
		return Letters, nil
	case SchemeIndex:
		return Index, nil
	default:
		return nil, errors.Wrapf(ErrUnknownScheme, "%q", name)
	}
}
