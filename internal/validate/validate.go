// Package validate holds the pure validation and sanitization rules for
// inbound form submissions.
package validate

import (
	"errors"
	"html"
	"math"
	"regexp"
	"strconv"
)

// emailRE accepts the common printable symbols RFC 5322 allows in the local
// part, and a dot-separated label sequence for the domain (labels 1-63
// chars, alphanumeric with internal hyphens).
var emailRE = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// Email rating errors, surfaced to submitters as 400s.
var (
	ErrRatingRequired = errors.New("rating is required")
	ErrRatingRange    = errors.New("rating must be an integer between 1 and 5")
)

// Email reports whether s looks like a deliverable email address.
func Email(s string) bool {
	return emailRE.MatchString(s)
}

// Escape replaces & < > " ' with their HTML entity equivalents. Applied to
// every free-text field before storage and before interpolation into
// outbound email bodies.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Rating coerces a decoded JSON value into a rating. It accepts numbers and
// numeric strings; non-integers and values outside [1,5] are rejected, not
// clamped.
func Rating(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, ErrRatingRequired
	case float64:
		if n != math.Trunc(n) {
			return 0, ErrRatingRange
		}
		return checkRange(int(n))
	case int:
		return checkRange(n)
	case string:
		if n == "" {
			return 0, ErrRatingRequired
		}
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, ErrRatingRange
		}
		return checkRange(i)
	default:
		return 0, ErrRatingRange
	}
}

func checkRange(n int) (int, error) {
	if n < 1 || n > 5 {
		return 0, ErrRatingRange
	}
	return n, nil
}

// Truthy mirrors loose form semantics for the honeypot field: any non-empty,
// non-zero, non-false value counts as set.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	default:
		return true
	}
}
