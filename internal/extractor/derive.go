package extractor

import (
	"io"
	"regexp"
	"strings"
)

var (
	// operatorRe matches enum-qualified operator references in arm patterns.
	operatorRe = regexp.MustCompile(`Operator::(\w+)`)
	// builderRe matches instruction builder calls in arm bodies.
	builderRe = regexp.MustCompile(`builder\.ins\(\)\.(\w+)\(`)
	// opcodeRe matches opcode enum references in arm bodies. The captured
	// name is lower-cased to get the instruction name.
	opcodeRe = regexp.MustCompile(`ir::Opcode::(\w+)`)
)

// SpecialCase names a helper call whose emitted instructions cannot be
// recovered from the body text. The comparison helpers select among
// several IR instructions internally, so their contribution is recorded
// here as a known fact about the helper.
type SpecialCase struct {
	Marker       string
	Instructions []string
}

// specialCases is consulted in order after the generic extraction passes.
var specialCases = []SpecialCase{
	{Marker: "translate_icmp(", Instructions: []string{"icmp", "uextend"}},
	{Marker: "translate_fcmp(", Instructions: []string{"fcmp", "uextend"}},
}

// Derive extracts the operators referenced by an arm's pattern and the
// IR instructions emitted by its body. An arm yielding no operators or
// no instructions fails the run.
func Derive(arm Arm) (Translation, error) {
	var t Translation

	for _, m := range operatorRe.FindAllStringSubmatch(arm.Pattern, -1) {
		t.Operators = append(t.Operators, m[1])
	}

	for _, m := range builderRe.FindAllStringSubmatch(arm.Body, -1) {
		t.Instructions = append(t.Instructions, m[1])
	}
	for _, m := range opcodeRe.FindAllStringSubmatch(arm.Body, -1) {
		t.Instructions = append(t.Instructions, strings.ToLower(m[1]))
	}
	for _, sc := range specialCases {
		if strings.Contains(arm.Body, sc.Marker) {
			t.Instructions = append(t.Instructions, sc.Instructions...)
		}
	}

	if len(t.Operators) == 0 || len(t.Instructions) == 0 {
		return Translation{}, &EmptyTranslationError{Arm: arm}
	}
	return t, nil
}

// Extract scans translator source and derives the full translation
// list: reconstruction and derivation in one pass.
func Extract(r io.Reader, profile Profile) ([]Translation, error) {
	arms, err := NewScanner(r, profile).Scan()
	if err != nil {
		return nil, err
	}

	translations := make([]Translation, 0, len(arms))
	for _, arm := range arms {
		t, err := Derive(arm)
		if err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}
	return translations, nil
}
