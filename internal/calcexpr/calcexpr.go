// Package calcexpr evaluates calculator formulas as restricted arithmetic
// expressions over a fixed variable binding. The grammar covers numbers,
// identifiers, + - * / % ^, unary minus, and parentheses. There are no
// function calls, no assignment, and no access to anything outside the
// supplied bindings, so untrusted formulas from calculator configs cannot
// escape into the host.
package calcexpr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrUnknownVariable is returned when a formula references an unbound
	// identifier.
	ErrUnknownVariable = errors.New("unknown variable")
	// ErrDivisionByZero is returned when a formula divides by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrSyntax is returned for malformed formulas.
	ErrSyntax = errors.New("syntax error")
)

// Evaluate parses and evaluates expr with the given variable bindings.
func Evaluate(expr string, vars map[string]float64) (float64, error) {
	node, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return node.Eval(vars)
}

// Node is one node of a parsed expression tree.
type Node interface {
	// Eval computes the node's value under the given bindings.
	Eval(vars map[string]float64) (float64, error)
}

type numberNode float64

func (n numberNode) Eval(map[string]float64) (float64, error) {
	return float64(n), nil
}

type variableNode string

func (n variableNode) Eval(vars map[string]float64) (float64, error) {
	v, ok := vars[string(n)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, string(n))
	}
	return v, nil
}

type unaryNode struct {
	op      byte
	operand Node
}

func (n unaryNode) Eval(vars map[string]float64) (float64, error) {
	v, err := n.operand.Eval(vars)
	if err != nil {
		return 0, err
	}
	if n.op == '-' {
		return -v, nil
	}
	return v, nil
}

type binaryNode struct {
	op          byte
	left, right Node
}

func (n binaryNode) Eval(vars map[string]float64) (float64, error) {
	l, err := n.left.Eval(vars)
	if err != nil {
		return 0, err
	}
	r, err := n.right.Eval(vars)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case '+':
		return l + r, nil
	case '-':
		return l - r, nil
	case '*':
		return l * r, nil
	case '/':
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return l / r, nil
	case '%':
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		return math.Mod(l, r), nil
	case '^':
		return math.Pow(l, r), nil
	}
	return 0, fmt.Errorf("%w: unknown operator %q", ErrSyntax, n.op)
}

// Parse parses expr into an evaluatable tree without evaluating it, so a
// formula can be validated once and applied to many bindings.
func Parse(expr string) (Node, error) {
	p := &parser{input: expr}
	p.skipSpaces()
	if p.eof() {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	node, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if !p.eof() {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, p.input[p.pos], p.pos)
	}
	return node, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpaces() {
	for !p.eof() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

// parseAdditive handles + and - (lowest precedence).
func (p *parser) parseAdditive() (Node, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpaces()
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// parseMultiplicative handles *, / and %.
func (p *parser) parseMultiplicative() (Node, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpaces()
		op := p.peek()
		if op != '*' && op != '/' && op != '%' {
			return left, nil
		}
		p.pos++
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
}

// parsePower handles ^, right-associative.
func (p *parser) parsePower() (Node, error) {
	base, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.peek() != '^' {
		return base, nil
	}
	p.pos++
	exponent, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: '^', left: base, right: exponent}, nil
}

func (p *parser) parseUnary() (Node, error) {
	p.skipSpaces()
	if p.peek() == '-' || p.peek() == '+' {
		op := p.peek()
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, operand: operand}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Node, error) {
	p.skipSpaces()
	if p.eof() {
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}

	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		node, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrSyntax)
		}
		p.pos++
		return node, nil

	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()

	case isIdentStart(rune(c)):
		return p.parseIdentifier(), nil
	}

	return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, c, p.pos)
}

func (p *parser) parseNumber() (Node, error) {
	start := p.pos
	for !p.eof() {
		c := p.input[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		break
	}
	text := p.input[start:p.pos]
	if strings.Count(text, ".") > 1 {
		return nil, fmt.Errorf("%w: malformed number %q", ErrSyntax, text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed number %q", ErrSyntax, text)
	}
	return numberNode(v), nil
}

func (p *parser) parseIdentifier() Node {
	start := p.pos
	for !p.eof() && isIdentPart(rune(p.input[p.pos])) {
		p.pos++
	}
	return variableNode(p.input[start:p.pos])
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
