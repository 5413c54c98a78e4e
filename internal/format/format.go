// Package format renders values for display in the page language.
package format

import (
	"strings"
	"time"
)

// Date formats t in a locale-friendly short form. The zero time renders as "".
func Date(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	switch strings.ToLower(lang) {
	case "ja":
		return t.Format("2006年1月2日")
	default:
		return t.Format("Jan 2, 2006")
	}
}

// ISODate formats t as a calendar date for machine-readable markup.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
