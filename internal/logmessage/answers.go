package logmessage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMultipleSelves is returned when two different characters are both marked as self.
var ErrMultipleSelves = errors.New("only one character can be self")

// Gender of a character.
type Gender int

const (
	Male Gender = iota
	Female
)

func (g Gender) String() string {
	if g == Female {
		return "F"
	}
	return "M"
}

// ParseGender accepts "m", "male", "f" and "female", case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return Male, nil
	case "f", "female":
		return Female, nil
	}
	return Male, fmt.Errorf("invalid gender %q", s)
}

// Character is one participant of a message.
type Character struct {
	Name     string
	World    string
	Gender   Gender
	IsPlayer bool
	IsSelf   bool
}

// ConditionAnswerer decides the value of a Condition.
type ConditionAnswerer interface {
	AsBool(c Condition) bool
}

// DynamicTextAnswerer renders a DynamicText.
type DynamicTextAnswerer interface {
	AsString(d DynamicText) string
}

// Answers supplies everything needed to evaluate ConditionTexts.
type Answers interface {
	ConditionAnswerer
	DynamicTextAnswerer
}

var _ Answers = (*LogMessageAnswers)(nil)

// LogMessageAnswers answers for an origin and a target character.
type LogMessageAnswers struct {
	origin     Character
	target     Character
	worldNames bool
}

// AnswersOption configures LogMessageAnswers.
type AnswersOption func(*LogMessageAnswers)

// WithWorldNames renders player names as Name@World when a world is known.
func WithWorldNames() AnswersOption {
	return func(a *LogMessageAnswers) {
		a.worldNames = true
	}
}

// NewLogMessageAnswers fails with ErrMultipleSelves if origin and target are
// distinct characters that are both self.
func NewLogMessageAnswers(origin, target Character, opts ...AnswersOption) (*LogMessageAnswers, error) {
	if origin.IsSelf && target.IsSelf && origin != target {
		return nil, ErrMultipleSelves
	}
	a := &LogMessageAnswers{origin: origin, target: target}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *LogMessageAnswers) Origin() Character { return a.origin }
func (a *LogMessageAnswers) Target() Character { return a.target }

func (a *LogMessageAnswers) AsBool(c Condition) bool {
	switch c {
	case IsSelfOrigin:
		return a.origin.IsSelf
	case IsSelfTarget:
		return a.target.IsSelf
	case IsOriginFemale, IsOriginFemaleDefault:
		return a.origin.Gender == Female
	case IsOriginPlayer:
		return a.origin.IsPlayer
	case IsTargetPlayer:
		return a.target.IsPlayer
	}
	return false
}

func (a *LogMessageAnswers) AsString(d DynamicText) string {
	switch d {
	case NpcOriginName:
		return a.origin.Name
	case NpcTargetName:
		return a.target.Name
	case PlayerOriginNameEn, PlayerOriginNameJp:
		return a.playerName(a.origin)
	case PlayerTargetNameEn, PlayerTargetNameJp:
		return a.playerName(a.target)
	}
	return ""
}

// Names are the same in every language.
func (a *LogMessageAnswers) playerName(c Character) string {
	if a.worldNames && c.World != "" {
		return c.Name + "@" + c.World
	}
	return c.Name
}
