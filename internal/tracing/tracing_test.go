package tracing

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseLineInstruction(t *testing.T) {
	event, err := ParseLine("TRACE - inst: iadd,i32,i32:i32,\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	inst, ok := event.(Instruction)
	if !ok {
		t.Fatalf("expected Instruction, got %T", event)
	}
	if inst.Opcode != "iadd" {
		t.Fatalf("unexpected opcode: %s", inst.Opcode)
	}
	if !reflect.DeepEqual(inst.OutputTypes, []string{"i32"}) {
		t.Fatalf("unexpected output types: %v", inst.OutputTypes)
	}
	if !reflect.DeepEqual(inst.InputTypes, []string{"i32", "i32"}) {
		t.Fatalf("unexpected input types: %v", inst.InputTypes)
	}
}

func TestParseLineRule(t *testing.T) {
	event, err := ParseLine("TRACE - rule: ,src/isa/x64/inst.isle line 4101")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	rule, ok := event.(Rule)
	if !ok {
		t.Fatalf("expected Rule, got %T", event)
	}
	if rule.Name != "" {
		t.Fatalf("expected anonymous rule, got name %q", rule.Name)
	}
	if rule.Pos != "src/isa/x64/inst.isle line 4101" {
		t.Fatalf("unexpected position: %q", rule.Pos)
	}
}

func TestParseLineIgnored(t *testing.T) {
	for _, line := range []string{
		"",
		"DEBUG - inst: iadd,i32,i32,",
		"compiling function u0:0",
	} {
		event, err := ParseLine(line)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		if event != nil {
			t.Fatalf("expected %q to be ignored, got %v", line, event)
		}
	}
}

func TestParseLineMalformed(t *testing.T) {
	for _, line := range []string{
		"TRACE - inst: iadd,i32",
		"TRACE - rule: onlyname",
		"TRACE - other: a,b",
		"TRACE x inst: iadd,i32,i32,",
		"TRACE - inst:",
	} {
		_, err := ParseLine(line)
		var malformed *MalformedLineError
		if !errors.As(err, &malformed) {
			t.Fatalf("expected MalformedLineError for %q, got %v", line, err)
		}
	}
}

func TestInstructionPredicates(t *testing.T) {
	inst := Instruction{
		Opcode:      "fcmp",
		OutputTypes: []string{"i8"},
		InputTypes:  []string{"f32", "f32"},
		Features:    []string{"branch"},
	}
	if !inst.IsFP() {
		t.Fatal("expected fp involvement")
	}
	if inst.IsMem() {
		t.Fatal("unexpected memory access")
	}
	if !inst.IsCtrl() {
		t.Fatal("expected control transfer")
	}
}

func TestSummarizeExcludesFP(t *testing.T) {
	trace := strings.Join([]string{
		"TRACE - inst: fadd,f32,f32:f32,",
		"TRACE - rule: fadd_rule,inst.isle line 10",
		"TRACE - rule: ,inst.isle line 11",
		"TRACE - inst: iadd,i32,i32:i32,",
		"TRACE - rule: iadd_rule,inst.isle line 20",
	}, "\n")

	report, err := Summarize(strings.NewReader(trace), Options{ExcludeFP: true})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if report.TotalUses != 1 {
		t.Fatalf("expected 1 use, got %d", report.TotalUses)
	}
	if report.TotalCovered != 1 {
		t.Fatalf("expected 1 covered position, got %d", report.TotalCovered)
	}
	if len(report.Top) != 1 || report.Top[0].Pos != "inst.isle line 20" {
		t.Fatalf("unexpected top entries: %v", report.Top)
	}
}

func TestSummarizeNamedFractions(t *testing.T) {
	trace := strings.Join([]string{
		"TRACE - inst: iadd,i32,i32:i32,",
		"TRACE - rule: named_rule,inst.isle line 10",
		"TRACE - rule: named_rule,inst.isle line 10",
		"TRACE - rule: ,inst.isle line 11",
	}, "\n")

	report, err := Summarize(strings.NewReader(trace), Options{})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if report.NamedUses != 2 || report.TotalUses != 3 {
		t.Fatalf("unexpected uses: %d/%d", report.NamedUses, report.TotalUses)
	}
	if report.NamedCovered != 1 || report.TotalCovered != 2 {
		t.Fatalf("unexpected covered: %d/%d", report.NamedCovered, report.TotalCovered)
	}
}

func TestSummarizeFirstSeenName(t *testing.T) {
	trace := strings.Join([]string{
		"TRACE - inst: iadd,i32,i32:i32,",
		"TRACE - rule: first,inst.isle line 10",
		"TRACE - rule: second,inst.isle line 10",
	}, "\n")

	report, err := Summarize(strings.NewReader(trace), Options{})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(report.Top) != 1 || report.Top[0].Name != "first" {
		t.Fatalf("expected first-seen name, got %v", report.Top)
	}
}

func TestSummarizeTopK(t *testing.T) {
	var lines []string
	lines = append(lines, "TRACE - inst: iadd,i32,i32:i32,")
	lines = append(lines, "TRACE - rule: a,line 1")
	for i := 0; i < 3; i++ {
		lines = append(lines, "TRACE - rule: b,line 2")
	}
	for i := 0; i < 2; i++ {
		lines = append(lines, "TRACE - rule: c,line 3")
	}

	report, err := Summarize(strings.NewReader(strings.Join(lines, "\n")), Options{TopK: 2})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if len(report.Top) != 2 {
		t.Fatalf("expected 2 top entries, got %d", len(report.Top))
	}
	if report.Top[0].Pos != "line 2" || report.Top[0].Count != 3 {
		t.Fatalf("unexpected top entry: %v", report.Top[0])
	}
	if report.Top[1].Pos != "line 3" || report.Top[1].Count != 2 {
		t.Fatalf("unexpected second entry: %v", report.Top[1])
	}
}

func TestRenderEmptyTrace(t *testing.T) {
	report, err := Summarize(strings.NewReader(""), Options{})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Named uses: 0/0 = n/a") {
		t.Fatalf("expected n/a for empty trace, got:\n%s", out)
	}
	if !strings.Contains(out, "Top 32 most commonly used rules:") {
		t.Fatalf("expected top header, got:\n%s", out)
	}
}

func TestRenderFormat(t *testing.T) {
	trace := strings.Join([]string{
		"TRACE - inst: iadd,i32,i32:i32,",
		"TRACE - rule: iadd_rule,inst.isle line 20",
	}, "\n")

	report, err := Summarize(strings.NewReader(trace), Options{})
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Named uses: 1/1 = 100.0%") {
		t.Fatalf("unexpected named uses line:\n%s", out)
	}
	if !strings.Contains(out, "1 inst.isle line 20 iadd_rule") {
		t.Fatalf("missing top entry line:\n%s", out)
	}
}
