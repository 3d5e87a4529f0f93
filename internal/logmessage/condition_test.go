package logmessage

import (
	"errors"
	"testing"
)

func mustIfParam(t *testing.T, markup string) IfParam {
	t.Helper()
	msg, err := ParseMessage("<If(" + markup + ")><Else/></If>")
	if err != nil {
		t.Fatalf("ParseMessage(%q): %v", markup, err)
	}
	return msg.Parts()[0].(*IfElse).Cond
}

func TestConditionTable(t *testing.T) {
	tests := []struct {
		markup string
		want   Condition
	}{
		{markup: "Equal(ObjectParameter(1),ObjectParameter(2))", want: IsSelfOrigin},
		{markup: "Equal(ObjectParameter(1),ObjectParameter(3))", want: IsSelfTarget},
		{markup: "PlayerParameter(7)", want: IsOriginPlayer},
		{markup: "PlayerParameter(8)", want: IsTargetPlayer},
		{markup: "PlayerParameter(5)", want: IsOriginFemaleDefault},
		{markup: "<Sheet(BNpcName,PlayerParameter(7),6)/>", want: IsOriginFemale},
	}
	for _, tc := range tests {
		got, err := ConditionFrom(mustIfParam(t, tc.markup))
		if err != nil {
			t.Fatalf("ConditionFrom(%s) error: %v", tc.markup, err)
		}
		if got != tc.want {
			t.Fatalf("ConditionFrom(%s) = %s, want %s", tc.markup, got, tc.want)
		}
	}
}

func TestConditionTableRejectsOtherShapes(t *testing.T) {
	for _, markup := range []string{
		"Equal(ObjectParameter(2),ObjectParameter(1))",
		"Equal(ObjectParameter(1),ObjectParameter(4))",
		"Equal(ObjectParameter(1))",
		"Equal(ObjectParameter(1),ObjectParameter(2),ObjectParameter(3))",
		"Equal(1,2)",
		"Equal(PlayerParameter(1),ObjectParameter(2))",
		"ObjectParameter(1)",
		"ObjectParameter(2)",
		"PlayerParameter(6)",
		"PlayerParameter(7,8)",
		"PlayerParameter(ObjStr)",
		"<Clickable/>",
		"<Clickable(PlayerParameter(7))/>",
		"<Sheet(BNpcName,PlayerParameter(8),6)/>",
		"<Sheet(BNpcName,PlayerParameter(7),5)/>",
		"<Sheet(ObjStr,PlayerParameter(7),6)/>",
		"<Sheet(ObjStr,PlayerParameter(7),0)/>",
		"<SheetEn(ObjStr,2,PlayerParameter(7),1,1)/>",
	} {
		p := mustIfParam(t, markup)
		_, err := ConditionFrom(p)
		var cerr *ConditionError
		if !errors.As(err, &cerr) {
			t.Fatalf("ConditionFrom(%s) error = %v, want *ConditionError", markup, err)
		}
		if cerr.Origin != p {
			t.Fatalf("ConditionFrom(%s) origin = %v", markup, cerr.Origin)
		}
	}
}

func mustLeaf(t *testing.T, markup string) MessagePart {
	t.Helper()
	msg, err := ParseMessage(markup)
	if err != nil {
		t.Fatalf("ParseMessage(%q): %v", markup, err)
	}
	parts := msg.Parts()
	if len(parts) != 1 {
		t.Fatalf("ParseMessage(%q) parts = %d, want 1", markup, len(parts))
	}
	return parts[0]
}

func dynamicTextOf(part MessagePart) (DynamicText, error) {
	switch v := part.(type) {
	case *Function:
		return DynamicTextFromFunction(v)
	case *TagElement:
		return DynamicTextFromTag(&v.Tag)
	}
	return 0, errors.New("not a call")
}

func TestDynamicTextTable(t *testing.T) {
	tests := []struct {
		markup string
		want   DynamicText
	}{
		{markup: "ObjectParameter(2)", want: NpcOriginName},
		{markup: "ObjectParameter(3)", want: NpcTargetName},
		{markup: "<Sheet(ObjStr,PlayerParameter(7),0)/>", want: PlayerOriginNameJp},
		{markup: "<Sheet(ObjStr,PlayerParameter(8),0)/>", want: PlayerTargetNameJp},
		{markup: "<SheetEn(ObjStr,2,PlayerParameter(7),1,1)/>", want: PlayerOriginNameEn},
		{markup: "<SheetEn(ObjStr,2,PlayerParameter(8),1,1)/>", want: PlayerTargetNameEn},
	}
	for _, tc := range tests {
		got, err := dynamicTextOf(mustLeaf(t, tc.markup))
		if err != nil {
			t.Fatalf("%s: %v", tc.markup, err)
		}
		if got != tc.want {
			t.Fatalf("%s = %s, want %s", tc.markup, got, tc.want)
		}
	}
}

func TestDynamicTextTableRejectsOtherShapes(t *testing.T) {
	for _, markup := range []string{
		"ObjectParameter(1)",
		"ObjectParameter(4)",
		"ObjectParameter(2,3)",
		"ObjectParameter(ObjStr)",
		"Equal(ObjectParameter(1),ObjectParameter(2))",
		"PlayerParameter(7)",
		"<Clickable/>",
		"<Sheet(ObjStr,PlayerParameter(9),0)/>",
		"<Sheet(ObjStr,PlayerParameter(7),1)/>",
		"<Sheet(BNpcName,PlayerParameter(7),0)/>",
		"<Sheet(BNpcName,PlayerParameter(7),6)/>",
		"<Sheet(ObjStr,7,0)/>",
		"<SheetEn(ObjStr,2,PlayerParameter(7),1)/>",
		"<SheetEn(ObjStr,3,PlayerParameter(7),1,1)/>",
		"<SheetEn(BNpcName,2,PlayerParameter(8),1,1)/>",
		"<SheetEn(ObjStr,2,PlayerParameter(8),1,2)/>",
		"<SheetEn(ObjStr,2,ObjectParameter(8),1,1)/>",
	} {
		_, err := dynamicTextOf(mustLeaf(t, markup))
		var derr *DynamicTextError
		if !errors.As(err, &derr) {
			t.Fatalf("%s: error = %v, want *DynamicTextError", markup, err)
		}
	}
}

func TestConditionAndDynamicTextNames(t *testing.T) {
	if got := IsOriginFemaleDefault.String(); got != "IsOriginFemaleDefault" {
		t.Fatalf("String() = %q", got)
	}
	if got := PlayerTargetNameJp.String(); got != "PlayerTargetNameJp" {
		t.Fatalf("String() = %q", got)
	}
	if got := Condition(42).String(); got != "Condition(42)" {
		t.Fatalf("String() = %q", got)
	}
}
