// Package tracing summarizes lowering trace logs: a line-oriented
// stream of instruction events (a new lowering starting) and rule events
// (an ISLE rule firing during that lowering).
package tracing

// Event is a parsed trace line: either an Instruction or a Rule.
type Event interface {
	traceEvent()
}

// Instruction reports an instruction about to be lowered. Its types and
// features decide whether subsequent rule firings are excluded from the
// statistics.
type Instruction struct {
	Opcode      string
	OutputTypes []string
	InputTypes  []string
	Features    []string
}

func (Instruction) traceEvent() {}

// HasType reports whether the type occurs among the instruction's
// outputs or inputs.
func (i Instruction) HasType(ty string) bool {
	for _, t := range i.OutputTypes {
		if t == ty {
			return true
		}
	}
	for _, t := range i.InputTypes {
		if t == ty {
			return true
		}
	}
	return false
}

// HasFeature reports whether the instruction carries the feature.
func (i Instruction) HasFeature(feature string) bool {
	for _, f := range i.Features {
		if f == feature {
			return true
		}
	}
	return false
}

// IsFP reports floating-point type involvement.
func (i Instruction) IsFP() bool {
	return i.HasType("f32") || i.HasType("f64")
}

// IsMem reports memory access.
func (i Instruction) IsMem() bool {
	return i.HasFeature("load") || i.HasFeature("store")
}

// IsCtrl reports control transfer.
func (i Instruction) IsCtrl() bool {
	return i.HasFeature("terminator") || i.HasFeature("branch") || i.HasFeature("call")
}

// Rule reports a rule firing at a source position. Name may be empty
// for anonymous rules.
type Rule struct {
	Name string
	Pos  string
}

func (Rule) traceEvent() {}
