package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternKeyString(t *testing.T) {
	cases := []struct {
		key  PatternKey
		want string
	}{
		{PatternKey{}, "0"},
		{PatternKey{Re: 1}, "1"},
		{PatternKey{Re: 12}, "12"},
		{PatternKey{Im: 2}, "2i"},
		{PatternKey{Im: 4}, "4i"},
		{PatternKey{Re: 1, Im: 1}, "1+1i"},
		{PatternKey{Re: 10, Im: 1}, "10+1i"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.key.String())
	}
}

func TestParsePatternKey(t *testing.T) {
	cases := []struct {
		input string
		want  PatternKey
	}{
		{"0", PatternKey{}},
		{"1", PatternKey{Re: 1}},
		{"12", PatternKey{Re: 12}},
		{"2i", PatternKey{Im: 2}},
		{"4i", PatternKey{Im: 4}},
		{"1+2i", PatternKey{Re: 1, Im: 2}},
		{"10+1i", PatternKey{Re: 10, Im: 1}},
		{" 2+2i ", PatternKey{Re: 2, Im: 2}},
	}

	for _, tc := range cases {
		key, err := ParsePatternKey(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, key, "input %q", tc.input)
	}
}

func TestParsePatternKeyRoundTrip(t *testing.T) {
	for _, rule := range Reference() {
		key, err := ParsePatternKey(rule.Key.String())
		require.NoError(t, err)
		assert.Equal(t, rule.Key, key)
	}
}

func TestParsePatternKeyRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "1+2", "+2i", "1+", "i", "one+twoi"} {
		_, err := ParsePatternKey(input)
		assert.Error(t, err, "input %q", input)
	}
}
