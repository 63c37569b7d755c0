package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CenterWeight is added to the real axis when the center cell of a
// neighborhood is alive. It exceeds any total the eight neighbors can
// contribute, so keys for center-alive patterns never collide with
// neighbor-only keys.
const CenterWeight = 10

/*
PatternKey identifies a 3x3 neighborhood pattern as a pair of axis sums.

Re accumulates alive diagonal neighbors (plus CenterWeight when the center
cell itself is alive); Im accumulates alive orthogonal neighbors. Every
cell on an axis carries a flat weight of 1, so a key separates patterns by
per-axis count, not by which cells within an axis are alive. Patterns that
differ only in the placement of alive cells along one axis are deliberately
treated as equivalent.
*/
type PatternKey struct {
	Re int
	Im int
}

// String renders the key in complex-literal form: "12", "2i", "1+1i".
func (k PatternKey) String() string {
	switch {
	case k.Im == 0:
		return strconv.Itoa(k.Re)
	case k.Re == 0:
		return fmt.Sprintf("%di", k.Im)
	default:
		return fmt.Sprintf("%d+%di", k.Re, k.Im)
	}
}

// ParsePatternKey parses the complex-literal form produced by String.
func ParsePatternKey(s string) (PatternKey, error) {
	var key PatternKey

	text := strings.TrimSpace(s)
	if text == "" {
		return key, errors.Errorf("[ParsePatternKey] empty pattern")
	}

	re, im, found := strings.Cut(text, "+")
	if found {
		if re == "" || im == "" {
			return key, errors.Errorf("[ParsePatternKey] incomplete pattern: %q", s)
		}
	} else if strings.HasSuffix(text, "i") {
		re, im = "", text
	} else {
		re, im = text, ""
	}

	if re != "" {
		n, err := strconv.Atoi(strings.TrimSpace(re))
		if err != nil {
			return key, errors.Wrapf(err, "[ParsePatternKey] bad real part in %q", s)
		}
		key.Re = n
	}

	if im != "" {
		part := strings.TrimSpace(im)
		if !strings.HasSuffix(part, "i") {
			return key, errors.Errorf("[ParsePatternKey] imaginary part %q is missing the i suffix", part)
		}
		n, err := strconv.Atoi(strings.TrimSuffix(part, "i"))
		if err != nil {
			return key, errors.Wrapf(err, "[ParsePatternKey] bad imaginary part in %q", s)
		}
		key.Im = n
	}

	return key, nil
}
