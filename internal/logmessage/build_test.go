package logmessage

import (
	"errors"
	"reflect"
	"testing"
)

func objParam(n uint32) *Function {
	return &Function{Name: FuncObjectParameter, Params: []Param{Num(n)}}
}

func playerParam(n uint32) *Function {
	return &Function{Name: FuncPlayerParameter, Params: []Param{Num(n)}}
}

func TestBuildIfElse(t *testing.T) {
	msg, err := ParseMessage(wavesEn)
	if err != nil {
		t.Fatal(err)
	}
	want := NewMessage(
		&IfElse{
			Cond: &Function{Name: FuncEqual, Params: []Param{objParam(1), objParam(2)}},
			Then: []IfElseThen{StaticText("you")},
			Else: []IfElseThen{StaticText("them")},
		},
		StaticText(" waves."),
	)
	if !reflect.DeepEqual(msg, want) {
		t.Fatalf("message = %#v\nwant %#v", msg, want)
	}
}

func TestBuildNestedClickableAndTagCondition(t *testing.T) {
	in := "<Clickable(<If(<Sheet(BNpcName,PlayerParameter(7),6)/>)>her<Else/>ObjectParameter(2)</If>)/>"
	msg, err := ParseMessage(in)
	if err != nil {
		t.Fatal(err)
	}
	want := NewMessage(&TagElement{Tag: Tag{
		Name: TagClickable,
		Params: []Param{&IfElse{
			Cond: &Tag{Name: TagSheet, Params: []Param{ObjBNpcName, playerParam(7), Num(6)}},
			Then: []IfElseThen{StaticText("her")},
			Else: []IfElseThen{objParam(2)},
		}},
	}})
	if !reflect.DeepEqual(msg, want) {
		t.Fatalf("message = %#v\nwant %#v", msg, want)
	}
}

func TestBuildRoundTripsMarkup(t *testing.T) {
	for _, in := range []string{surprisedEn, annoyedEn, surprisedJa, wavesEn, "<Clickable>hi</Clickable>", "<Clickable></Clickable>"} {
		msg, err := ParseMessage(in)
		if err != nil {
			t.Fatalf("ParseMessage(%q): %v", in, err)
		}
		if got := msg.String(); got != in {
			t.Fatalf("String() = %q, want %q", got, in)
		}
	}
}

func TestBuildTagPairInline(t *testing.T) {
	msg, err := ParseMessage("<Clickable>hi</Clickable>")
	if err != nil {
		t.Fatal(err)
	}
	te, ok := msg.Parts()[0].(*TagElement)
	if !ok || te.Inline == nil || *te.Inline != "hi" {
		t.Fatalf("part = %#v", msg.Parts()[0])
	}
}

func TestBuildRejectsMismatchedTags(t *testing.T) {
	_, err := ParseMessage("<Clickable>hi</Sheet>")
	var aerr *AstError
	if !errors.As(err, &aerr) {
		t.Fatalf("error = %v, want *AstError", err)
	}
	if aerr.Rule != RuleCloseTag || aerr.Pos != 13 {
		t.Fatalf("ast error = %+v", aerr)
	}
}

func TestBuildRejectsMalformedTrees(t *testing.T) {
	tests := []struct {
		name string
		root *Node
	}{
		{name: "nil", root: nil},
		{name: "wrong root", root: &Node{Rule: RuleText}},
		{name: "empty element", root: &Node{Rule: RuleMessage, Children: []*Node{{Rule: RuleElement}}}},
		{name: "if without branches", root: &Node{Rule: RuleMessage, Children: []*Node{
			{Rule: RuleElement, Children: []*Node{{Rule: RuleIfElseElement}}},
		}}},
		{name: "unknown tag", root: &Node{Rule: RuleMessage, Children: []*Node{
			{Rule: RuleElement, Children: []*Node{{Rule: RuleAutoClosingTag, Children: []*Node{{Rule: RuleTagName, Value: "Foo"}}}}},
		}}},
		{name: "unknown function", root: &Node{Rule: RuleMessage, Children: []*Node{
			{Rule: RuleFunction, Children: []*Node{{Rule: RuleFuncName, Value: "Foo"}}},
		}}},
	}
	for _, tc := range tests {
		_, err := Build(tc.root)
		var aerr *AstError
		if !errors.As(err, &aerr) {
			t.Fatalf("%s: error = %v, want *AstError", tc.name, err)
		}
	}
}
