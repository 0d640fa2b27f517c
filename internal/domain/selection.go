package domain

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// MaxSelectedCoins caps the coin filter.
	MaxSelectedCoins = 5
	// DefaultDays is the day range used when none is requested.
	DefaultDays = 30
)

// DayRanges lists the day windows offered by the range drop-down, in display order.
var DayRanges = []int{1, 7, 14, 30, 90, 180, 365}

// ValidDays checks if days is one of DayRanges.
func ValidDays(days int) bool {
	for _, d := range DayRanges {
		if d == days {
			return true
		}
	}
	return false
}

// ParseDays parses a day range, falling back to def for an empty string.
func ParseDays(raw string, def int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidDays, "%q is not a number", raw)
	}
	if !ValidDays(days) {
		return 0, errors.Wrapf(ErrInvalidDays, "%d is not one of %v", days, DayRanges)
	}
	return days, nil
}

// ParseCoinList splits a comma separated list of coin ids.
func ParseCoinList(raw string) []string {
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// SelectionRequest is the filter input as sent by the page, before it is
// checked against the top-N listing.
type SelectionRequest struct {
	Coins []string
	// Explicit is true when the coin filter was supplied, even if empty.
	Explicit bool
	Days     int
}

// Selection the resolved coin filter and day range of one render pass.
type Selection struct {
	Coins []string `json:"coins"`
	Days  int      `json:"days"`
}

// Resolve checks the request against the available ids. Without an explicit
// filter the first available coin is selected. Unknown ids and duplicates are
// dropped and at most MaxSelectedCoins ids are kept, in request order.
func (r SelectionRequest) Resolve(available []string) Selection {
	days := r.Days
	if !ValidDays(days) {
		days = DefaultDays
	}

	if !r.Explicit {
		if len(available) == 0 {
			return Selection{Coins: []string{}, Days: days}
		}
		return Selection{Coins: []string{available[0]}, Days: days}
	}

	known := make(map[string]struct{}, len(available))
	for _, id := range available {
		known[id] = struct{}{}
	}

	coins := make([]string, 0, MaxSelectedCoins)
	seen := make(map[string]struct{}, len(r.Coins))
	for _, id := range r.Coins {
		if len(coins) == MaxSelectedCoins {
			break
		}
		if _, ok := known[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		coins = append(coins, id)
	}

	return Selection{Coins: coins, Days: days}
}

// IsEmpty reports whether no coin is selected.
func (s Selection) IsEmpty() bool {
	return len(s.Coins) == 0
}

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	for _, c := range s.Coins {
		if c == id {
			return true
		}
	}
	return false
}
