package logmessage

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Rule identifies the grammar rule that matched a Node.
type Rule int

const (
	RuleMessage Rule = iota
	RuleText
	RuleElement
	RuleIfElseElement
	RuleIfParam
	RuleIfElseThen
	RuleOpenTag
	RuleCloseTag
	RuleAutoClosingTag
	RuleTagName
	RuleFunction
	RuleFuncName
	RuleParam
	RuleParamNum
	RuleParamObj
	RuleEOI
)

var ruleNames = [...]string{
	RuleMessage:        "message",
	RuleText:           "text",
	RuleElement:        "element",
	RuleIfElseElement:  "if_else_element",
	RuleIfParam:        "if_param",
	RuleIfElseThen:     "if_else_then",
	RuleOpenTag:        "open_tag",
	RuleCloseTag:       "close_tag",
	RuleAutoClosingTag: "auto_closing_tag",
	RuleTagName:        "tag_name",
	RuleFunction:       "function",
	RuleFuncName:       "func_name",
	RuleParam:          "param",
	RuleParamNum:       "param_num",
	RuleParamObj:       "param_obj",
	RuleEOI:            "EOI",
}

func (r Rule) String() string {
	if r < 0 || int(r) >= len(ruleNames) {
		return fmt.Sprintf("Rule(%d)", int(r))
	}
	return ruleNames[r]
}

// Node is one matched rule of the concrete parse tree.
type Node struct {
	Rule     Rule
	Pos      int    // byte offset of the match in the input
	Value    string // matched input
	Children []*Node
}

// ParseError reports the furthest position the parser reached and the rules
// it expected there.
type ParseError struct {
	Pos      int
	Line     int
	Column   int
	Expected []Rule
	Found    string
}

func (e *ParseError) Error() string {
	names := make([]string, len(e.Expected))
	for i, r := range e.Expected {
		names[i] = r.String()
	}
	return fmt.Sprintf("parse error at %d:%d: expected %s, found %s",
		e.Line, e.Column, strings.Join(names, " | "), e.Found)
}

const (
	litIfOpen   = "<If("
	litIfClose  = ")>"
	litElse     = "<Else/>"
	litIfEnd    = "</If>"
	litCloseTag = "</"
	litAutoEnd  = "/>"
)

// Longer names first so that Sheet never shadows SheetEn.
var (
	tagNameLiterals  = []string{"Clickable", "SheetEn", "Sheet"}
	funcNameLiterals = []string{"Equal", "ObjectParameter", "PlayerParameter"}
	objLiterals      = []string{"ObjStr", "BNpcName"}
)

// Parse matches input against the log message grammar and returns the root
// RuleMessage node. It never returns a partial tree.
func Parse(input string) (*Node, error) {
	p := &parser{input: input, furthest: -1}
	root, ok := p.message()
	if !ok {
		return nil, p.err()
	}
	return root, nil
}

type parser struct {
	input    string
	pos      int
	furthest int
	expected []Rule
}

func (p *parser) fail(r Rule) {
	switch {
	case p.pos > p.furthest:
		p.furthest = p.pos
		p.expected = []Rule{r}
	case p.pos == p.furthest:
		for _, e := range p.expected {
			if e == r {
				return
			}
		}
		p.expected = append(p.expected, r)
	}
}

func (p *parser) err() *ParseError {
	pos := p.furthest
	if pos < 0 {
		pos = p.pos
	}
	line, col := 1, 1
	for _, r := range p.input[:pos] {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	found := "end of input"
	if pos < len(p.input) {
		r, _ := utf8.DecodeRuneInString(p.input[pos:])
		found = strconv.QuoteRune(r)
	}
	return &ParseError{Pos: pos, Line: line, Column: col, Expected: p.expected, Found: found}
}

func (p *parser) node(r Rule, start int, children ...*Node) *Node {
	return &Node{Rule: r, Pos: start, Value: p.input[start:p.pos], Children: children}
}

func (p *parser) literal(s string, r Rule) bool {
	if strings.HasPrefix(p.input[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	p.fail(r)
	return false
}

// oneOf matches the first of words that is not directly followed by more
// identifier characters.
func (p *parser) oneOf(words []string, r Rule) (*Node, bool) {
	start := p.pos
	rest := p.input[p.pos:]
	for _, w := range words {
		if strings.HasPrefix(rest, w) && !isIdentByte(rest, len(w)) {
			p.pos += len(w)
			return p.node(r, start), true
		}
	}
	p.fail(r)
	return nil, false
}

func isIdentByte(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	c := s[i]
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// message = (element | function | text)* EOI
func (p *parser) message() (*Node, bool) {
	var children []*Node
	for {
		if p.pos == len(p.input) {
			children = append(children, p.node(RuleEOI, p.pos))
			return &Node{Rule: RuleMessage, Value: p.input, Children: children}, true
		}
		n, ok := p.item()
		if !ok {
			p.fail(RuleEOI)
			return nil, false
		}
		children = append(children, n)
	}
}

func (p *parser) item() (*Node, bool) {
	start := p.pos
	if n, ok := p.element(); ok {
		return n, true
	}
	p.pos = start
	if n, ok := p.function(); ok {
		return n, true
	}
	p.pos = start
	return p.text()
}

// text is a maximal run that contains no '<' and does not run into a function call.
func (p *parser) text() (*Node, bool) {
	start := p.pos
	for p.pos < len(p.input) {
		if p.input[p.pos] == '<' {
			break
		}
		if p.pos > start && p.atFunction() {
			break
		}
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])
		p.pos += size
	}
	if p.pos == start {
		p.fail(RuleText)
		return nil, false
	}
	return p.node(RuleText, start), true
}

// atFunction reports whether a complete function call starts at the current
// position, without consuming input or recording failures.
func (p *parser) atFunction() bool {
	switch p.input[p.pos] {
	case 'E', 'O', 'P':
	default:
		return false
	}
	pos, furthest := p.pos, p.furthest
	expected := p.expected
	_, ok := p.function()
	p.pos, p.furthest, p.expected = pos, furthest, expected
	return ok
}

// plainText is text inside an open/close tag pair: anything up to the next '<'.
func (p *parser) plainText() (*Node, bool) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] != '<' {
		p.pos++
	}
	if p.pos == start {
		p.fail(RuleText)
		return nil, false
	}
	return p.node(RuleText, start), true
}

// element = if_else_element | open_tag text? close_tag | auto_closing_tag
//
// Open and auto-closing tags share their head, which is parsed once.
func (p *parser) element() (*Node, bool) {
	start := p.pos
	if n, ok := p.ifElseElement(); ok {
		return p.node(RuleElement, start, n), true
	}
	p.pos = start
	head, ok := p.tagHead(RuleElement)
	if !ok {
		p.pos = start
		return nil, false
	}
	if p.literal(litAutoEnd, RuleAutoClosingTag) {
		return p.node(RuleElement, start, p.node(RuleAutoClosingTag, start, head...)), true
	}
	if !p.literal(">", RuleOpenTag) {
		p.pos = start
		return nil, false
	}
	children := []*Node{p.node(RuleOpenTag, start, head...)}
	if t, ok := p.plainText(); ok {
		children = append(children, t)
	}
	closing, ok := p.closeTag()
	if !ok {
		p.pos = start
		return nil, false
	}
	children = append(children, closing)
	return p.node(RuleElement, start, children...), true
}

// if_else_element = "<If(" if_param ")>" if_else_then "<Else/>" if_else_then "</If>"
func (p *parser) ifElseElement() (*Node, bool) {
	start := p.pos
	if !p.literal(litIfOpen, RuleIfElseElement) {
		return nil, false
	}
	cond, ok := p.ifParam()
	if !ok || !p.literal(litIfClose, RuleIfElseElement) {
		return nil, false
	}
	then, _ := p.ifElseThen()
	if !p.literal(litElse, RuleIfElseElement) {
		return nil, false
	}
	otherwise, _ := p.ifElseThen()
	if !p.literal(litIfEnd, RuleIfElseElement) {
		return nil, false
	}
	return p.node(RuleIfElseElement, start, cond, then, otherwise), true
}

// if_param = function | auto_closing_tag
func (p *parser) ifParam() (*Node, bool) {
	start := p.pos
	if n, ok := p.function(); ok {
		return p.node(RuleIfParam, start, n), true
	}
	p.pos = start
	if n, ok := p.autoClosingTag(); ok {
		return p.node(RuleIfParam, start, n), true
	}
	p.pos = start
	p.fail(RuleIfParam)
	return nil, false
}

// if_else_then = (element | function | text)*
func (p *parser) ifElseThen() (*Node, bool) {
	start := p.pos
	var children []*Node
	for p.pos < len(p.input) {
		itemStart := p.pos
		n, ok := p.item()
		if !ok {
			p.pos = itemStart
			break
		}
		children = append(children, n)
	}
	return p.node(RuleIfElseThen, start, children...), true
}

// auto_closing_tag = "<" tag_name params? "/>"
func (p *parser) autoClosingTag() (*Node, bool) {
	start := p.pos
	children, ok := p.tagHead(RuleAutoClosingTag)
	if !ok || !p.literal(litAutoEnd, RuleAutoClosingTag) {
		return nil, false
	}
	return p.node(RuleAutoClosingTag, start, children...), true
}

// close_tag = "</" tag_name ">"
func (p *parser) closeTag() (*Node, bool) {
	start := p.pos
	if !p.literal(litCloseTag, RuleCloseTag) {
		return nil, false
	}
	name, ok := p.oneOf(tagNameLiterals, RuleTagName)
	if !ok || !p.literal(">", RuleCloseTag) {
		return nil, false
	}
	return p.node(RuleCloseTag, start, name), true
}

func (p *parser) tagHead(r Rule) ([]*Node, bool) {
	if !p.literal("<", r) {
		return nil, false
	}
	name, ok := p.oneOf(tagNameLiterals, RuleTagName)
	if !ok {
		return nil, false
	}
	children := []*Node{name}
	if p.pos < len(p.input) && p.input[p.pos] == '(' {
		params, ok := p.params(r)
		if !ok {
			return nil, false
		}
		children = append(children, params...)
	}
	return children, true
}

// function = func_name "(" param ("," param)* ")"
func (p *parser) function() (*Node, bool) {
	start := p.pos
	name, ok := p.oneOf(funcNameLiterals, RuleFuncName)
	if !ok {
		return nil, false
	}
	params, ok := p.params(RuleFunction)
	if !ok {
		return nil, false
	}
	return p.node(RuleFunction, start, append([]*Node{name}, params...)...), true
}

func (p *parser) params(r Rule) ([]*Node, bool) {
	if !p.literal("(", r) {
		return nil, false
	}
	var params []*Node
	for {
		n, ok := p.param()
		if !ok {
			return nil, false
		}
		params = append(params, n)
		if strings.HasPrefix(p.input[p.pos:], ",") {
			p.pos++
			continue
		}
		if !p.literal(")", r) {
			return nil, false
		}
		return params, true
	}
}

// param = element | param_num | param_obj | function
func (p *parser) param() (*Node, bool) {
	start := p.pos
	if n, ok := p.element(); ok {
		return p.node(RuleParam, start, n), true
	}
	p.pos = start
	if n, ok := p.paramNum(); ok {
		return p.node(RuleParam, start, n), true
	}
	p.pos = start
	if n, ok := p.oneOf(objLiterals, RuleParamObj); ok {
		return p.node(RuleParam, start, n), true
	}
	p.pos = start
	if n, ok := p.function(); ok {
		return p.node(RuleParam, start, n), true
	}
	p.pos = start
	p.fail(RuleParam)
	return nil, false
}

func (p *parser) paramNum() (*Node, bool) {
	start := p.pos
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos == start {
		p.fail(RuleParamNum)
		return nil, false
	}
	if _, err := strconv.ParseUint(p.input[start:p.pos], 10, 32); err != nil {
		p.pos = start
		p.fail(RuleParamNum)
		return nil, false
	}
	return p.node(RuleParamNum, start), true
}
