package logmessage

import (
	"errors"
	"strings"
)

// ErrNilAnswers is returned by Evaluate and Process when no Answers are given.
var ErrNilAnswers = errors.New("logmessage: nil answers")

// Evaluate concatenates, in source order, every text whose conditions all
// hold for a, resolving dynamic slots through a. a must not be nil.
func (c ConditionTexts) Evaluate(a Answers) string {
	var b strings.Builder
	c.ForEachText(a, func(t Text) {
		b.WriteString(resolveText(t, a))
	})
	return b.String()
}

// Texts returns the texts whose conditions hold, in source order.
func (c ConditionTexts) Texts(a ConditionAnswerer) []Text {
	var out []Text
	c.ForEachText(a, func(t Text) {
		out = append(out, t)
	})
	return out
}

// ForEachText calls fn for each text whose conditions hold, in source order.
func (c ConditionTexts) ForEachText(a ConditionAnswerer, fn func(Text)) {
	for _, item := range c.items {
		if holds(item.Conditions, a) {
			fn(item.Text)
		}
	}
}

func holds(conds []ConditionState, a ConditionAnswerer) bool {
	for _, st := range conds {
		if a.AsBool(st.Condition) != st.Expected {
			return false
		}
	}
	return true
}

func resolveText(t Text, a DynamicTextAnswerer) string {
	switch v := t.(type) {
	case StaticText:
		return string(v)
	case DynamicText:
		return a.AsString(v)
	}
	return ""
}

// Reduce parses markup and reduces it to ConditionTexts.
func Reduce(markup string) (ConditionTexts, error) {
	msg, err := ParseMessage(markup)
	if err != nil {
		return ConditionTexts{}, err
	}
	return msg.Reduce()
}

// Evaluate renders texts for a. A nil a, including a nil
// *LogMessageAnswers, gives ErrNilAnswers.
func Evaluate(texts ConditionTexts, a Answers) (string, error) {
	if nilAnswers(a) {
		return "", ErrNilAnswers
	}
	return texts.Evaluate(a), nil
}

func nilAnswers(a Answers) bool {
	switch v := a.(type) {
	case nil:
		return true
	case *LogMessageAnswers:
		return v == nil
	}
	return false
}

// Process reduces markup and evaluates it once. Callers rendering the same
// markup repeatedly should keep the result of Reduce instead.
func Process(markup string, a Answers) (string, error) {
	texts, err := Reduce(markup)
	if err != nil {
		return "", err
	}
	return Evaluate(texts, a)
}
