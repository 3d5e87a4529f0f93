package logmessage

import (
	"fmt"
	"strconv"
)

// AstError reports a parse tree that matched the grammar but breaks an AST
// invariant, such as an open tag closed by a different tag name.
type AstError struct {
	Pos  int
	Rule Rule
	Msg  string
}

func (e *AstError) Error() string {
	return fmt.Sprintf("ast error at offset %d (%s): %s", e.Pos, e.Rule, e.Msg)
}

func astErrorf(n *Node, format string, args ...any) *AstError {
	if n == nil {
		return &AstError{Rule: RuleMessage, Msg: fmt.Sprintf(format, args...)}
	}
	return &AstError{Pos: n.Pos, Rule: n.Rule, Msg: fmt.Sprintf(format, args...)}
}

// ParseMessage parses and builds markup in one step.
func ParseMessage(markup string) (Message, error) {
	root, err := Parse(markup)
	if err != nil {
		return Message{}, err
	}
	return Build(root)
}

// Build converts a concrete parse tree rooted at a RuleMessage node into a Message.
func Build(root *Node) (Message, error) {
	if root == nil || root.Rule != RuleMessage {
		return Message{}, astErrorf(root, "expected %s node", RuleMessage)
	}
	parts := make([]MessagePart, 0, len(root.Children))
	for _, child := range root.Children {
		switch child.Rule {
		case RuleEOI:
		case RuleText:
			parts = append(parts, StaticText(child.Value))
		case RuleElement:
			e, err := buildElement(child)
			if err != nil {
				return Message{}, err
			}
			parts = append(parts, e)
		case RuleFunction:
			f, err := buildFunction(child)
			if err != nil {
				return Message{}, err
			}
			parts = append(parts, f)
		default:
			return Message{}, astErrorf(child, "unexpected %s in message", child.Rule)
		}
	}
	return Message{parts: parts}, nil
}

func buildElement(n *Node) (Element, error) {
	if n.Rule != RuleElement {
		return nil, astErrorf(n, "expected %s, got %s", RuleElement, n.Rule)
	}
	c := n.Children
	switch {
	case len(c) == 1 && c[0].Rule == RuleIfElseElement:
		return buildIfElse(c[0])
	case len(c) == 1 && c[0].Rule == RuleAutoClosingTag:
		tag, err := buildTag(c[0])
		if err != nil {
			return nil, err
		}
		return &TagElement{Tag: *tag}, nil
	case len(c) >= 2 && c[0].Rule == RuleOpenTag && c[len(c)-1].Rule == RuleCloseTag:
		return buildTagPair(c)
	}
	return nil, astErrorf(n, "malformed element")
}

func buildTagPair(c []*Node) (Element, error) {
	open, closing := c[0], c[len(c)-1]
	tag, err := buildTag(open)
	if err != nil {
		return nil, err
	}
	if len(closing.Children) != 1 {
		return nil, astErrorf(closing, "missing tag name")
	}
	closeName, err := buildTagName(closing.Children[0])
	if err != nil {
		return nil, err
	}
	if closeName != tag.Name {
		return nil, astErrorf(closing, "open and close tags do not match (%s, %s)", tag.Name, closeName)
	}
	inline := ""
	switch len(c) {
	case 2:
	case 3:
		if c[1].Rule != RuleText {
			return nil, astErrorf(c[1], "expected %s inside tag pair, got %s", RuleText, c[1].Rule)
		}
		inline = c[1].Value
	default:
		return nil, astErrorf(open, "too many children in tag pair")
	}
	return &TagElement{Tag: *tag, Inline: &inline}, nil
}

func buildIfElse(n *Node) (*IfElse, error) {
	c := n.Children
	if len(c) != 3 || c[0].Rule != RuleIfParam || c[1].Rule != RuleIfElseThen || c[2].Rule != RuleIfElseThen {
		return nil, astErrorf(n, "malformed if/else")
	}
	cond, err := buildIfParam(c[0])
	if err != nil {
		return nil, err
	}
	then, err := buildIfElseThen(c[1])
	if err != nil {
		return nil, err
	}
	otherwise, err := buildIfElseThen(c[2])
	if err != nil {
		return nil, err
	}
	return &IfElse{Cond: cond, Then: then, Else: otherwise}, nil
}

func buildIfParam(n *Node) (IfParam, error) {
	if len(n.Children) != 1 {
		return nil, astErrorf(n, "if condition needs exactly one node")
	}
	child := n.Children[0]
	switch child.Rule {
	case RuleFunction:
		return buildFunction(child)
	case RuleAutoClosingTag:
		return buildTag(child)
	}
	return nil, astErrorf(child, "%s cannot be an if condition", child.Rule)
}

func buildIfElseThen(n *Node) ([]IfElseThen, error) {
	items := make([]IfElseThen, 0, len(n.Children))
	for _, child := range n.Children {
		switch child.Rule {
		case RuleText:
			items = append(items, StaticText(child.Value))
		case RuleElement:
			e, err := buildElement(child)
			if err != nil {
				return nil, err
			}
			items = append(items, e)
		case RuleFunction:
			f, err := buildFunction(child)
			if err != nil {
				return nil, err
			}
			items = append(items, f)
		default:
			return nil, astErrorf(child, "unexpected %s in if/else branch", child.Rule)
		}
	}
	return items, nil
}

// buildTag handles both open_tag and auto_closing_tag: [tag_name, param...].
func buildTag(n *Node) (*Tag, error) {
	if len(n.Children) == 0 {
		return nil, astErrorf(n, "missing tag name")
	}
	name, err := buildTagName(n.Children[0])
	if err != nil {
		return nil, err
	}
	params, err := buildParams(n.Children[1:])
	if err != nil {
		return nil, err
	}
	return &Tag{Name: name, Params: params}, nil
}

func buildTagName(n *Node) (TagName, error) {
	if n.Rule != RuleTagName {
		return 0, astErrorf(n, "expected %s, got %s", RuleTagName, n.Rule)
	}
	name, ok := tagNames[n.Value]
	if !ok {
		return 0, astErrorf(n, "unknown tag %q", n.Value)
	}
	return name, nil
}

func buildFunction(n *Node) (*Function, error) {
	if len(n.Children) == 0 || n.Children[0].Rule != RuleFuncName {
		return nil, astErrorf(n, "missing function name")
	}
	name, ok := funcNames[n.Children[0].Value]
	if !ok {
		return nil, astErrorf(n.Children[0], "unknown function %q", n.Children[0].Value)
	}
	params, err := buildParams(n.Children[1:])
	if err != nil {
		return nil, err
	}
	return &Function{Name: name, Params: params}, nil
}

func buildParams(nodes []*Node) ([]Param, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	params := make([]Param, 0, len(nodes))
	for _, n := range nodes {
		p, err := buildParam(n)
		if err != nil {
			return nil, err
		}
		params = append(params, p)
	}
	return params, nil
}

func buildParam(n *Node) (Param, error) {
	if n.Rule != RuleParam || len(n.Children) != 1 {
		return nil, astErrorf(n, "expected a single %s", RuleParam)
	}
	child := n.Children[0]
	switch child.Rule {
	case RuleElement:
		return buildElement(child)
	case RuleFunction:
		return buildFunction(child)
	case RuleParamNum:
		v, err := strconv.ParseUint(child.Value, 10, 32)
		if err != nil {
			return nil, astErrorf(child, "invalid number %q", child.Value)
		}
		return Num(v), nil
	case RuleParamObj:
		o, ok := objNames[child.Value]
		if !ok {
			return nil, astErrorf(child, "unknown object %q", child.Value)
		}
		return o, nil
	}
	return nil, astErrorf(child, "unexpected %s as parameter", child.Rule)
}
