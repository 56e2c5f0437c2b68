package trading

import (
	"strings"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
)

// UnknownSystem is reported for every safe haven; terminal system affiliation is not resolved
const UnknownSystem = "Unknown"

// DefaultSafeHavenFragments are the name fragments of known lawless terminals
var DefaultSafeHavenFragments = []string{"GRIM", "HEX", "PYRO", "RUIN", "CHECKMATE"}

// DefaultSafeHavenLimit caps how many safe havens are listed
const DefaultSafeHavenLimit = 10

// SafeHaven is a terminal considered low-risk for restricted cargo
type SafeHaven struct {
	Terminal string
	System   string
}

// SafeHavenClassifier picks safe-haven terminals out of the quote collection by
// case-insensitive name fragment.
type SafeHavenClassifier struct {
	fragments []string
	limit     int
}

// NewSafeHavenClassifier creates a classifier. Fragments are compared upper-cased;
// empty fragments are ignored. A limit of zero or less means no cap.
func NewSafeHavenClassifier(fragments []string, limit int) *SafeHavenClassifier {
	normalized := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.ToUpper(strings.TrimSpace(f))
		if f != "" {
			normalized = append(normalized, f)
		}
	}
	return &SafeHavenClassifier{fragments: normalized, limit: limit}
}

// IsSafeHaven reports whether a terminal name contains any of the fragments
func (c *SafeHavenClassifier) IsSafeHaven(terminal string) bool {
	upper := strings.ToUpper(terminal)
	for _, f := range c.fragments {
		if strings.Contains(upper, f) {
			return true
		}
	}
	return false
}

// Classify returns the distinct safe-haven terminals in the order they are first seen,
// stopping at the limit
func (c *SafeHavenClassifier) Classify(quotes []market.PriceQuote) []SafeHaven {
	seen := make(map[string]struct{})
	havens := make([]SafeHaven, 0)

	for _, q := range quotes {
		if c.limit > 0 && len(havens) >= c.limit {
			break
		}
		terminal := q.TerminalName()
		if _, dup := seen[terminal]; dup {
			continue
		}
		if !c.IsSafeHaven(terminal) {
			continue
		}
		seen[terminal] = struct{}{}
		havens = append(havens, SafeHaven{Terminal: terminal, System: UnknownSystem})
	}

	return havens
}
