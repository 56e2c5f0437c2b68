package trading

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
)

// MatchMode selects how a commodity name is joined against quote commodity names
type MatchMode string

const (
	// MatchSubstring matches quotes whose commodity name contains the target
	MatchSubstring MatchMode = "substring"
	// MatchExact matches quotes whose commodity name equals the target
	MatchExact MatchMode = "exact"
)

// NameMatcher decides whether a quote's commodity name refers to the target commodity.
// Quotes carry no commodity identifier, so this predicate is the whole join.
type NameMatcher interface {
	Matches(target, quoteCommodity string) bool
}

// SubstringMatcher is a case-sensitive containment match.
// It tolerates variant naming in the source data but also cross-matches goods that
// share a prefix ("Stim" matches "Stimulant Processor").
type SubstringMatcher struct{}

func (SubstringMatcher) Matches(target, quoteCommodity string) bool {
	return strings.Contains(quoteCommodity, target)
}

// ExactMatcher requires the names to be identical
type ExactMatcher struct{}

func (ExactMatcher) Matches(target, quoteCommodity string) bool {
	return target == quoteCommodity
}

// NewNameMatcher returns the matcher for a mode; an empty mode selects substring matching
func NewNameMatcher(mode MatchMode) (NameMatcher, error) {
	switch mode {
	case MatchSubstring, "":
		return SubstringMatcher{}, nil
	case MatchExact:
		return ExactMatcher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatchMode, string(mode))
	}
}

// QuotesFor returns the quotes that refer to the target commodity, in source order.
// Swapping the name join for an identifier join only touches this function.
func QuotesFor(target string, quotes []market.PriceQuote, matcher NameMatcher) []market.PriceQuote {
	matched := make([]market.PriceQuote, 0)
	for _, q := range quotes {
		if matcher.Matches(target, q.CommodityName()) {
			matched = append(matched, q)
		}
	}
	return matched
}
