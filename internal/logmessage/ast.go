package logmessage

import (
	"fmt"
	"strconv"
	"strings"
)

// TagName is the name of an angle-bracket tag.
type TagName int

const (
	TagClickable TagName = iota
	TagSheet
	TagSheetEn
)

func (n TagName) String() string {
	switch n {
	case TagClickable:
		return "Clickable"
	case TagSheet:
		return "Sheet"
	case TagSheetEn:
		return "SheetEn"
	}
	return fmt.Sprintf("TagName(%d)", int(n))
}

// FuncName is the name of a bare function call.
type FuncName int

const (
	FuncEqual FuncName = iota
	FuncObjectParameter
	FuncPlayerParameter
)

func (n FuncName) String() string {
	switch n {
	case FuncEqual:
		return "Equal"
	case FuncObjectParameter:
		return "ObjectParameter"
	case FuncPlayerParameter:
		return "PlayerParameter"
	}
	return fmt.Sprintf("FuncName(%d)", int(n))
}

// Obj is an object literal parameter.
type Obj int

const (
	ObjStr Obj = iota
	ObjBNpcName
)

func (o Obj) String() string {
	switch o {
	case ObjStr:
		return "ObjStr"
	case ObjBNpcName:
		return "BNpcName"
	}
	return fmt.Sprintf("Obj(%d)", int(o))
}

func (Obj) param() {}

var (
	tagNames  = map[string]TagName{"Clickable": TagClickable, "Sheet": TagSheet, "SheetEn": TagSheetEn}
	funcNames = map[string]FuncName{"Equal": FuncEqual, "ObjectParameter": FuncObjectParameter, "PlayerParameter": FuncPlayerParameter}
	objNames  = map[string]Obj{"ObjStr": ObjStr, "BNpcName": ObjBNpcName}
)

// MessagePart is a top level piece of a Message: StaticText, an Element or a *Function.
type MessagePart interface {
	fmt.Stringer
	messagePart()
}

// Param is a call parameter: an Element, a *Function, a Num or an Obj.
type Param interface {
	fmt.Stringer
	param()
}

// IfParam is the condition of an IfElse: a *Function or a *Tag.
type IfParam interface {
	fmt.Stringer
	ifParam()
}

// IfElseThen is one item of an IfElse branch: a *Function, an Element or StaticText.
type IfElseThen interface {
	fmt.Stringer
	ifElseThen()
}

// Element is a *TagElement or an *IfElse.
type Element interface {
	MessagePart
	Param
	IfElseThen
	element()
}

// Message is the root of a parsed log message.
type Message struct {
	parts []MessagePart
}

// NewMessage builds a Message from parts.
func NewMessage(parts ...MessagePart) Message {
	return Message{parts: append([]MessagePart(nil), parts...)}
}

// Parts returns a copy of the message parts in source order.
func (m Message) Parts() []MessagePart {
	return append([]MessagePart(nil), m.parts...)
}

func (m Message) String() string {
	var b strings.Builder
	for _, p := range m.parts {
		b.WriteString(p.String())
	}
	return b.String()
}

// StaticText is literal text. It is also the static form of a reduced Text.
type StaticText string

func (t StaticText) String() string { return string(t) }

func (StaticText) messagePart() {}
func (StaticText) ifElseThen()  {}
func (StaticText) text()        {}

// Num is a non-negative integer parameter.
type Num uint32

func (n Num) String() string { return strconv.FormatUint(uint64(n), 10) }

func (Num) param() {}

// Function is a bare call such as PlayerParameter(7).
type Function struct {
	Name   FuncName
	Params []Param
}

func (f *Function) String() string {
	return f.Name.String() + formatParams(f.Params)
}

func (*Function) messagePart() {}
func (*Function) param()       {}
func (*Function) ifParam()     {}
func (*Function) ifElseThen()  {}

// Tag is the name and parameters of an angle-bracket tag.
type Tag struct {
	Name   TagName
	Params []Param
}

func (t *Tag) String() string {
	return "<" + t.Name.String() + formatParams(t.Params) + "/>"
}

func (*Tag) ifParam() {}

// TagElement is a tag in element position. Inline is nil for an auto-closing
// tag and holds the enclosed text for an open/close pair.
type TagElement struct {
	Tag    Tag
	Inline *string
}

func (e *TagElement) String() string {
	if e.Inline == nil {
		return e.Tag.String()
	}
	name := e.Tag.Name.String()
	return "<" + name + formatParams(e.Tag.Params) + ">" + *e.Inline + "</" + name + ">"
}

func (*TagElement) messagePart() {}
func (*TagElement) param()       {}
func (*TagElement) ifElseThen()  {}
func (*TagElement) element()     {}

// IfElse selects Then when Cond holds and Else otherwise.
type IfElse struct {
	Cond IfParam
	Then []IfElseThen
	Else []IfElseThen
}

func (e *IfElse) String() string {
	var b strings.Builder
	b.WriteString("<If(")
	b.WriteString(e.Cond.String())
	b.WriteString(")>")
	for _, t := range e.Then {
		b.WriteString(t.String())
	}
	b.WriteString("<Else/>")
	for _, t := range e.Else {
		b.WriteString(t.String())
	}
	b.WriteString("</If>")
	return b.String()
}

func (*IfElse) messagePart() {}
func (*IfElse) param()       {}
func (*IfElse) ifElseThen()  {}
func (*IfElse) element()     {}

func formatParams(params []Param) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}
