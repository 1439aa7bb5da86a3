package tracing

import (
	"fmt"
	"strings"
)

// MalformedLineError reports a line carrying the trace marker but
// violating the expected shape. The trace is internally generated, so
// any deviation is a producer bug, not bad input to tolerate.
type MalformedLineError struct {
	Line   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed trace line (%s): %q", e.Reason, e.Line)
}

// ParseLine parses one trace line. Lines not starting with the TRACE
// marker yield (nil, nil) and are ignored by the caller.
func ParseLine(line string) (Event, error) {
	parts := splitFields(strings.TrimRight(line, " \t\r\n"), 4)
	if len(parts) == 0 || parts[0] != "TRACE" {
		return nil, nil
	}
	if len(parts) != 4 {
		return nil, &MalformedLineError{Line: line, Reason: "expected 4 fields"}
	}
	if parts[1] != "-" {
		return nil, &MalformedLineError{Line: line, Reason: "expected - delimiter"}
	}

	typ := strings.TrimRight(parts[2], ":")
	fields := strings.Split(parts[3], ",")
	switch typ {
	case "inst":
		if len(fields) != 4 {
			return nil, &MalformedLineError{Line: line, Reason: "inst expects 4 fields"}
		}
		return Instruction{
			Opcode:      fields[0],
			OutputTypes: strings.Split(fields[1], ":"),
			InputTypes:  strings.Split(fields[2], ":"),
			Features:    strings.Split(fields[3], ":"),
		}, nil
	case "rule":
		if len(fields) != 2 {
			return nil, &MalformedLineError{Line: line, Reason: "rule expects 2 fields"}
		}
		return Rule{Name: fields[0], Pos: fields[1]}, nil
	default:
		return nil, &MalformedLineError{Line: line, Reason: "unknown trace type " + typ}
	}
}

// splitFields splits on runs of spaces and tabs into at most n parts;
// the final part keeps its internal whitespace (rule positions contain
// spaces).
func splitFields(s string, n int) []string {
	var parts []string
	s = strings.TrimLeft(s, " \t")
	for len(parts) < n-1 {
		i := strings.IndexAny(s, " \t")
		if i < 0 {
			break
		}
		parts = append(parts, s[:i])
		s = strings.TrimLeft(s[i:], " \t")
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
