package logmessage

import "fmt"

// Condition is a boolean fact about the participants of a message, derived
// from a known call shape. It only appears as the condition of an IfElse.
type Condition int

const (
	// IsSelfOrigin holds when the current player is the origin.
	// Equal(ObjectParameter(1),ObjectParameter(2))
	IsSelfOrigin Condition = iota
	// IsSelfTarget holds when the current player is the target.
	// Equal(ObjectParameter(1),ObjectParameter(3))
	IsSelfTarget
	// IsOriginFemale holds when the origin is female.
	// <Sheet(BNpcName,PlayerParameter(7),6)/>
	IsOriginFemale
	// IsOriginFemaleDefault holds when the origin is female. The game uses it
	// when the origin is not a player.
	// PlayerParameter(5)
	IsOriginFemaleDefault
	// IsOriginPlayer holds when the origin is a player character.
	// PlayerParameter(7)
	IsOriginPlayer
	// IsTargetPlayer holds when the target is a player character.
	// PlayerParameter(8)
	IsTargetPlayer
)

func (c Condition) String() string {
	switch c {
	case IsSelfOrigin:
		return "IsSelfOrigin"
	case IsSelfTarget:
		return "IsSelfTarget"
	case IsOriginFemale:
		return "IsOriginFemale"
	case IsOriginFemaleDefault:
		return "IsOriginFemaleDefault"
	case IsOriginPlayer:
		return "IsOriginPlayer"
	case IsTargetPlayer:
		return "IsTargetPlayer"
	}
	return fmt.Sprintf("Condition(%d)", int(c))
}

// DynamicText is a text slot whose value depends on the participants.
type DynamicText int

const (
	// NpcOriginName is the origin's name when it is not a player.
	// ObjectParameter(2)
	NpcOriginName DynamicText = iota
	// NpcTargetName is the target's name when it is not a player.
	// ObjectParameter(3)
	NpcTargetName
	// PlayerOriginNameEn is the origin player's name in English messages.
	// <SheetEn(ObjStr,2,PlayerParameter(7),1,1)/>
	PlayerOriginNameEn
	// PlayerTargetNameEn is the target player's name in English messages.
	// <SheetEn(ObjStr,2,PlayerParameter(8),1,1)/>
	PlayerTargetNameEn
	// PlayerOriginNameJp is the origin player's name in Japanese messages.
	// <Sheet(ObjStr,PlayerParameter(7),0)/>
	PlayerOriginNameJp
	// PlayerTargetNameJp is the target player's name in Japanese messages.
	// <Sheet(ObjStr,PlayerParameter(8),0)/>
	PlayerTargetNameJp
)

func (d DynamicText) String() string {
	switch d {
	case NpcOriginName:
		return "NpcOriginName"
	case NpcTargetName:
		return "NpcTargetName"
	case PlayerOriginNameEn:
		return "PlayerOriginNameEn"
	case PlayerTargetNameEn:
		return "PlayerTargetNameEn"
	case PlayerOriginNameJp:
		return "PlayerOriginNameJp"
	case PlayerTargetNameJp:
		return "PlayerTargetNameJp"
	}
	return fmt.Sprintf("DynamicText(%d)", int(d))
}

func (DynamicText) text() {}

// ConditionError reports a call shape that is not a known Condition.
type ConditionError struct {
	Origin IfParam
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("unknown condition (%s)", e.Origin)
}

// DynamicTextError reports a call shape that is not a known DynamicText.
// Origin is the offending *Function or *Tag.
type DynamicTextError struct {
	Origin fmt.Stringer
}

func (e *DynamicTextError) Error() string {
	return fmt.Sprintf("unknown dynamic text (%s)", e.Origin)
}

// ConditionFrom resolves an if condition to a Condition.
func ConditionFrom(p IfParam) (Condition, error) {
	switch v := p.(type) {
	case *Function:
		return conditionFromFunction(v)
	case *Tag:
		return conditionFromTag(v)
	}
	return 0, &ConditionError{Origin: p}
}

func conditionFromFunction(f *Function) (Condition, error) {
	p := f.Params
	switch f.Name {
	case FuncEqual:
		if len(p) == 2 && isCall(p[0], FuncObjectParameter, 1) {
			switch {
			case isCall(p[1], FuncObjectParameter, 2):
				return IsSelfOrigin, nil
			case isCall(p[1], FuncObjectParameter, 3):
				return IsSelfTarget, nil
			}
		}
	case FuncPlayerParameter:
		switch {
		case isOnlyNum(p, 7):
			return IsOriginPlayer, nil
		case isOnlyNum(p, 8):
			return IsTargetPlayer, nil
		case isOnlyNum(p, 5):
			return IsOriginFemaleDefault, nil
		}
	}
	return 0, &ConditionError{Origin: f}
}

func conditionFromTag(t *Tag) (Condition, error) {
	p := t.Params
	if t.Name == TagSheet && len(p) == 3 &&
		isObj(p[0], ObjBNpcName) && isCall(p[1], FuncPlayerParameter, 7) && isNum(p[2], 6) {
		return IsOriginFemale, nil
	}
	return 0, &ConditionError{Origin: t}
}

// DynamicTextFromFunction resolves a bare function leaf to a DynamicText.
func DynamicTextFromFunction(f *Function) (DynamicText, error) {
	if f.Name == FuncObjectParameter {
		switch {
		case isOnlyNum(f.Params, 2):
			return NpcOriginName, nil
		case isOnlyNum(f.Params, 3):
			return NpcTargetName, nil
		}
	}
	return 0, &DynamicTextError{Origin: f}
}

// DynamicTextFromTag resolves a tag leaf to a DynamicText.
func DynamicTextFromTag(t *Tag) (DynamicText, error) {
	p := t.Params
	switch t.Name {
	case TagSheet:
		if len(p) == 3 && isObj(p[0], ObjStr) && isNum(p[2], 0) {
			switch {
			case isCall(p[1], FuncPlayerParameter, 7):
				return PlayerOriginNameJp, nil
			case isCall(p[1], FuncPlayerParameter, 8):
				return PlayerTargetNameJp, nil
			}
		}
	case TagSheetEn:
		if len(p) == 5 && isObj(p[0], ObjStr) && isNum(p[1], 2) && isNum(p[3], 1) && isNum(p[4], 1) {
			switch {
			case isCall(p[2], FuncPlayerParameter, 7):
				return PlayerOriginNameEn, nil
			case isCall(p[2], FuncPlayerParameter, 8):
				return PlayerTargetNameEn, nil
			}
		}
	}
	return 0, &DynamicTextError{Origin: t}
}

func isNum(p Param, n uint32) bool {
	v, ok := p.(Num)
	return ok && uint32(v) == n
}

func isOnlyNum(params []Param, n uint32) bool {
	return len(params) == 1 && isNum(params[0], n)
}

func isObj(p Param, o Obj) bool {
	v, ok := p.(Obj)
	return ok && v == o
}

// isCall matches name(arg) with a single numeric argument.
func isCall(p Param, name FuncName, arg uint32) bool {
	f, ok := p.(*Function)
	return ok && f.Name == name && isOnlyNum(f.Params, arg)
}
