package extractor

import "fmt"

// Arm is one case of the dispatch construct inside the translation
// function: the raw pattern text pairing one or more operators with the
// raw body text that lowers them. Arms only live long enough to be
// derived into a Translation.
type Arm struct {
	Pattern string
	Body    string
}

// Translation records which operators an arm matches and which IR
// instructions its body emits. Instruction order follows textual
// appearance and duplicates are preserved (a helper call can append the
// same instruction twice).
type Translation struct {
	Operators    []string `json:"operators"`
	Instructions []string `json:"instructions"`
}

// NotFoundError reports that an expected anchor line (function
// signature, dispatch open) was never seen before the input ran out.
type NotFoundError struct {
	Anchor string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find target: %s", e.Anchor)
}

// EmptyTranslationError reports an arm that derived to zero operators or
// zero instructions. The translator source is assumed internally
// consistent, so this is a contract breach rather than a recoverable
// condition: silent omission would leave the mapping incomplete.
type EmptyTranslationError struct {
	Arm Arm
}

func (e *EmptyTranslationError) Error() string {
	return fmt.Sprintf("arm derived no operators or instructions: pattern %q", e.Arm.Pattern)
}
