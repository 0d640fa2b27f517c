package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDays(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int
		shouldErr bool
	}{
		{name: "empty falls back to default", input: "", expected: DefaultDays},
		{name: "one day", input: "1", expected: 1},
		{name: "one year", input: "365", expected: 365},
		{name: "whitespace", input: " 90 ", expected: 90},
		{name: "not in range set", input: "2", shouldErr: true},
		{name: "negative", input: "-7", shouldErr: true},
		{name: "not a number", input: "week", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDays(tt.input, DefaultDays)
			if tt.shouldErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDays)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCoinList(t *testing.T) {
	assert.Nil(t, ParseCoinList(""))
	assert.Nil(t, ParseCoinList(" , ,"))
	assert.Equal(t, []string{"bitcoin", "ethereum"}, ParseCoinList("bitcoin, ethereum,"))
}

func TestSelectionRequest_Resolve(t *testing.T) {
	available := []string{"bitcoin", "ethereum", "tether", "xrp", "bnb", "solana"}

	tests := []struct {
		name     string
		request  SelectionRequest
		expected Selection
	}{
		{
			name:     "default selects first coin",
			request:  SelectionRequest{Days: 30},
			expected: Selection{Coins: []string{"bitcoin"}, Days: 30},
		},
		{
			name:     "explicit empty selection",
			request:  SelectionRequest{Explicit: true, Days: 7},
			expected: Selection{Coins: []string{}, Days: 7},
		},
		{
			name:     "unknown ids and duplicates dropped",
			request:  SelectionRequest{Coins: []string{"ethereum", "dogecoin", "ethereum", "xrp"}, Explicit: true, Days: 14},
			expected: Selection{Coins: []string{"ethereum", "xrp"}, Days: 14},
		},
		{
			name: "capped at five coins",
			request: SelectionRequest{
				Coins:    []string{"solana", "bnb", "xrp", "tether", "ethereum", "bitcoin"},
				Explicit: true,
				Days:     30,
			},
			expected: Selection{Coins: []string{"solana", "bnb", "xrp", "tether", "ethereum"}, Days: 30},
		},
		{
			name:     "invalid days fall back to default",
			request:  SelectionRequest{Days: 3},
			expected: Selection{Coins: []string{"bitcoin"}, Days: DefaultDays},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.request.Resolve(available))
		})
	}
}

func TestSelectionRequest_ResolveWithoutListing(t *testing.T) {
	sel := SelectionRequest{Days: 30}.Resolve(nil)
	assert.True(t, sel.IsEmpty())
	assert.Equal(t, 30, sel.Days)
}

func TestSelection_Contains(t *testing.T) {
	sel := Selection{Coins: []string{"bitcoin", "xrp"}, Days: 30}
	assert.True(t, sel.Contains("xrp"))
	assert.False(t, sel.Contains("ethereum"))
	assert.False(t, sel.IsEmpty())
}
