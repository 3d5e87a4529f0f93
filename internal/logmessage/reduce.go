package logmessage

import (
	"errors"
	"fmt"
)

// Kinds of *ProcessError, matched with errors.Is.
var (
	ErrDanglingFunction    = errors.New("function used in unexpected place")
	ErrInvalidFunc         = errors.New("invalid combination of function and parameters")
	ErrInvalidTag          = errors.New("invalid combination of tag and parameters")
	ErrUnexpectedClickable = errors.New("clickable contained unexpected params")
	ErrUnexpectedObj       = errors.New("unexpected obj parameter")
	ErrUnexpectedNum       = errors.New("unexpected num parameter")
	ErrInvalidCondition    = errors.New("unknown condition")
)

// ProcessError reports an AST node that cannot be reduced at its position.
// Err, when set, is the *ConditionError or *DynamicTextError behind it.
type ProcessError struct {
	Kind error
	Node fmt.Stringer
	Err  error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%v (%s)", e.Kind, e.Node)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProcessError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Text is the value of a reduced leaf: StaticText or DynamicText.
type Text interface {
	fmt.Stringer
	text()
}

// ConditionState is a condition together with the value it must have.
type ConditionState struct {
	Condition Condition
	Expected  bool
}

// ConditionText is a text leaf guarded by a conjunction of conditions.
type ConditionText struct {
	Conditions []ConditionState
	Text       Text
}

// ConditionTexts is the reduced, reusable form of a Message. It is never
// modified after construction and is safe for concurrent use.
type ConditionTexts struct {
	items []ConditionText
}

// NewConditionTexts copies items into a ConditionTexts.
func NewConditionTexts(items []ConditionText) ConditionTexts {
	return ConditionTexts{items: copyItems(items)}
}

// Items returns a copy of the condition texts in source order.
func (c ConditionTexts) Items() []ConditionText {
	return copyItems(c.items)
}

// Len returns the number of condition texts.
func (c ConditionTexts) Len() int {
	return len(c.items)
}

// Conditions returns each distinct condition referenced, in first-seen order.
func (c ConditionTexts) Conditions() []Condition {
	seen := make(map[Condition]bool)
	var out []Condition
	for _, item := range c.items {
		for _, st := range item.Conditions {
			if !seen[st.Condition] {
				seen[st.Condition] = true
				out = append(out, st.Condition)
			}
		}
	}
	return out
}

func copyItems(items []ConditionText) []ConditionText {
	if items == nil {
		return nil
	}
	out := make([]ConditionText, len(items))
	for i, item := range items {
		out[i] = ConditionText{
			Conditions: append([]ConditionState(nil), item.Conditions...),
			Text:       item.Text,
		}
	}
	return out
}

// Reduce flattens the message into condition texts, keeping source order.
func (m Message) Reduce() (ConditionTexts, error) {
	var items []ConditionText
	for _, part := range m.parts {
		out, err := reduce(part, nil)
		if err != nil {
			return ConditionTexts{}, err
		}
		items = append(items, out...)
	}
	return ConditionTexts{items: items}, nil
}

// reduce handles every node kind that can stand in text position.
func reduce(n fmt.Stringer, conds []ConditionState) ([]ConditionText, error) {
	switch v := n.(type) {
	case StaticText:
		return []ConditionText{{Conditions: conds, Text: v}}, nil
	case *IfElse:
		return reduceIfElse(v, conds)
	case *TagElement:
		return reduceTagElement(v, conds)
	case *Function:
		return reduceFunction(v, conds)
	case Num:
		return nil, &ProcessError{Kind: ErrUnexpectedNum, Node: v}
	case Obj:
		return nil, &ProcessError{Kind: ErrUnexpectedObj, Node: v}
	}
	return nil, fmt.Errorf("logmessage: cannot reduce %T", n)
}

func reduceIfElse(ie *IfElse, conds []ConditionState) ([]ConditionText, error) {
	cond, err := ConditionFrom(ie.Cond)
	if err != nil {
		return nil, &ProcessError{Kind: ErrInvalidCondition, Node: ie.Cond, Err: err}
	}
	ifConds := withCondition(conds, ConditionState{Condition: cond, Expected: true})
	elseConds := withCondition(conds, ConditionState{Condition: cond, Expected: false})

	var out []ConditionText
	for _, then := range ie.Then {
		res, err := reduce(then, ifConds)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	for _, then := range ie.Else {
		res, err := reduce(then, elseConds)
		if err != nil {
			return nil, err
		}
		out = append(out, res...)
	}
	return out, nil
}

// reduceTagElement resolves a tag in text position. Inline text between an
// open and a close tag carries no meaning and is dropped.
func reduceTagElement(te *TagElement, conds []ConditionState) ([]ConditionText, error) {
	if te.Tag.Name == TagClickable {
		return reduceClickable(te, conds)
	}
	dt, err := DynamicTextFromTag(&te.Tag)
	if err != nil {
		return nil, &ProcessError{Kind: ErrInvalidTag, Node: &te.Tag, Err: err}
	}
	return []ConditionText{{Conditions: conds, Text: dt}}, nil
}

// reduceClickable unwraps Clickable, which only decorates its single param.
func reduceClickable(te *TagElement, conds []ConditionState) ([]ConditionText, error) {
	if len(te.Tag.Params) != 1 {
		return nil, &ProcessError{Kind: ErrUnexpectedClickable, Node: te}
	}
	return reduce(te.Tag.Params[0], conds)
}

func reduceFunction(f *Function, conds []ConditionState) ([]ConditionText, error) {
	switch f.Name {
	case FuncEqual, FuncPlayerParameter:
		return nil, &ProcessError{Kind: ErrDanglingFunction, Node: f}
	}
	dt, err := DynamicTextFromFunction(f)
	if err != nil {
		return nil, &ProcessError{Kind: ErrInvalidFunc, Node: f, Err: err}
	}
	return []ConditionText{{Conditions: conds, Text: dt}}, nil
}

// withCondition always allocates so sibling branches never share a backing array.
func withCondition(conds []ConditionState, st ConditionState) []ConditionState {
	out := make([]ConditionState, len(conds)+1)
	copy(out, conds)
	out[len(conds)] = st
	return out
}
