package extractor

import "strings"

const indent = "    "

// Profile is the immutable set of structural markers the scanner keys
// on. The translator source is not parsed as a grammar; arms are
// recognized purely by these line prefix and suffix conventions.
type Profile struct {
	// FuncAnchor is the prefix of the translation function signature line.
	FuncAnchor string
	// DispatchOpen is the prefix of the line opening the dispatch construct.
	DispatchOpen string
	// DispatchClose is the prefix of the line closing the dispatch
	// construct. Seeing it ends scanning normally.
	DispatchClose string
	// BranchMarker must appear somewhere in a single-line arm.
	BranchMarker string
	// Separator splits a single-line arm into pattern and body.
	Separator string
	// Terminator is the suffix a single-line arm must end with.
	Terminator string
	// BlockOpen is the suffix ending pattern accumulation for a
	// multi-line arm.
	BlockOpen string
	// BodyClose is the prefix of the line ending body accumulation
	// (nested block closing at two levels of indentation).
	BodyClose string
}

// DefaultProfile returns the markers of cranelift's
// wasm/src/code_translator.rs conventions.
func DefaultProfile() Profile {
	return Profile{
		FuncAnchor:    "pub fn translate_operator",
		DispatchOpen:  indent + "match op {",
		DispatchClose: indent + "};",
		BranchMarker:  "Operator::",
		Separator:     " => ",
		Terminator:    ",\n",
		BlockOpen:     "=> {\n",
		BodyClose:     indent + indent + "}",
	}
}

// singleLine recognizes a one-line arm: it must mention the branch
// marker, contain the separator, and end with the terminator. The text
// before the separator is the pattern, the remainder is the body.
func (p Profile) singleLine(line string) (Arm, bool) {
	if !strings.Contains(line, p.BranchMarker) {
		return Arm{}, false
	}
	if !strings.Contains(line, p.Separator) {
		return Arm{}, false
	}
	if !strings.HasSuffix(line, p.Terminator) {
		return Arm{}, false
	}
	pattern, body, _ := strings.Cut(line, p.Separator)
	return Arm{Pattern: pattern, Body: body}, true
}
