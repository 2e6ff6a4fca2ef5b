package pricing

import (
	"fmt"
	"regexp"
	"strings"
)

// weightToken matches a normalized weight label: a number followed by G or KG.
var weightToken = regexp.MustCompile(`^\d+(\.\d+)?(G|KG)$`)

// NormalizeWeight upper-cases a weight label and strips all whitespace, so
// "1 kg" and "1KG" compare equal.
func NormalizeWeight(label string) string {
	return strings.ToUpper(strings.Join(strings.Fields(label), ""))
}

// ValidWeight reports whether a single label is a well-formed weight token
// after normalization.
func ValidWeight(label string) bool {
	return weightToken.MatchString(NormalizeWeight(label))
}

// ParseWeightOptions parses a comma-separated weight option string into its
// normalized labels. Every invalid token is reported, not silently dropped.
func ParseWeightOptions(options string) ([]string, error) {
	var labels []string
	var invalid []string
	for _, tok := range strings.Split(options, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		norm := NormalizeWeight(tok)
		if !weightToken.MatchString(norm) {
			invalid = append(invalid, tok)
			continue
		}
		labels = append(labels, norm)
	}
	if len(invalid) > 0 {
		return labels, fmt.Errorf("invalid weight options: %s", strings.Join(invalid, ", "))
	}
	return labels, nil
}

// WeightAllowed reports whether label is one of the product's weight options,
// comparing normalized forms.
func WeightAllowed(label string, options []string) bool {
	norm := NormalizeWeight(label)
	for _, opt := range options {
		if NormalizeWeight(opt) == norm {
			return true
		}
	}
	return false
}
