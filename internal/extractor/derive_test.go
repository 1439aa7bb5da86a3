package extractor

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDeriveOperatorsAndBuilderCalls(t *testing.T) {
	arm := Arm{
		Pattern: "        Operator::I32Add | Operator::I64Add => {\n",
		Body: "            let sum = builder.ins().iadd(a, b);\n" +
			"            state.push1(sum);\n" +
			"        }\n",
	}

	translation, err := Derive(arm)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !reflect.DeepEqual(translation.Operators, []string{"I32Add", "I64Add"}) {
		t.Fatalf("unexpected operators: %v", translation.Operators)
	}
	if !reflect.DeepEqual(translation.Instructions, []string{"iadd"}) {
		t.Fatalf("unexpected instructions: %v", translation.Instructions)
	}
}

func TestDeriveOpcodeRefsLowerCased(t *testing.T) {
	arm := Arm{
		Pattern: "        Operator::MemoryGrow => {\n",
		Body: "            environ.translate_memory_grow(builder, ir::Opcode::Call, val)?\n" +
			"        }\n",
	}

	translation, err := Derive(arm)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !reflect.DeepEqual(translation.Instructions, []string{"call"}) {
		t.Fatalf("unexpected instructions: %v", translation.Instructions)
	}
}

func TestDeriveSpecialCases(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "icmp helper",
			body: "            translate_icmp(IntCC::Equal, builder, state)\n        }\n",
			want: []string{"icmp", "uextend"},
		},
		{
			name: "fcmp helper",
			body: "            translate_fcmp(FloatCC::Equal, builder, state)\n        }\n",
			want: []string{"fcmp", "uextend"},
		},
		{
			name: "helper after builder call",
			body: "            let x = builder.ins().bint(I32, v);\n" +
				"            translate_icmp(IntCC::Equal, builder, state)\n" +
				"        }\n",
			want: []string{"bint", "icmp", "uextend"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			arm := Arm{Pattern: "        Operator::I32Eq => {\n", Body: c.body}
			translation, err := Derive(arm)
			if err != nil {
				t.Fatalf("derive: %v", err)
			}
			if !reflect.DeepEqual(translation.Instructions, c.want) {
				t.Fatalf("expected instructions %v, got %v", c.want, translation.Instructions)
			}
		})
	}
}

func TestDeriveDuplicatesPreserved(t *testing.T) {
	arm := Arm{
		Pattern: "        Operator::I32Eqz => {\n",
		Body: "            let zero = builder.ins().iconst(I32, 0);\n" +
			"            let one = builder.ins().iconst(I32, 1);\n" +
			"        }\n",
	}

	translation, err := Derive(arm)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !reflect.DeepEqual(translation.Instructions, []string{"iconst", "iconst"}) {
		t.Fatalf("expected duplicate iconst preserved, got %v", translation.Instructions)
	}
}

func TestDeriveEmptyTranslation(t *testing.T) {
	cases := []struct {
		name string
		arm  Arm
	}{
		{
			name: "no instructions",
			arm:  Arm{Pattern: "        Operator::Drop", Body: "state.pop1(),\n"},
		},
		{
			name: "no operators",
			arm:  Arm{Pattern: "        _ => {\n", Body: "            builder.ins().trap(code);\n        }\n"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Derive(c.arm)
			var empty *EmptyTranslationError
			if !errors.As(err, &empty) {
				t.Fatalf("expected EmptyTranslationError, got %v", err)
			}
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	src := "pub fn translate_operator(op: &Operator) {\n" +
		"    match op {\n" +
		"        Operator::F32Sqrt => state.push1(builder.ins().sqrt(arg)),\n" +
		"        Operator::I32Eq => {\n" +
		"            translate_icmp(IntCC::Equal, builder, state)\n" +
		"        }\n" +
		"    };\n" +
		"}\n"

	first, err := Extract(strings.NewReader(src), DefaultProfile())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	second, err := Extract(strings.NewReader(src), DefaultProfile())
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction not deterministic: %v vs %v", first, second)
	}

	if len(first) != 2 {
		t.Fatalf("expected 2 translations, got %d", len(first))
	}
	if !reflect.DeepEqual(first[0].Instructions, []string{"sqrt"}) {
		t.Fatalf("unexpected first instructions: %v", first[0].Instructions)
	}
	if !reflect.DeepEqual(first[1].Instructions, []string{"icmp", "uextend"}) {
		t.Fatalf("unexpected second instructions: %v", first[1].Instructions)
	}
}
