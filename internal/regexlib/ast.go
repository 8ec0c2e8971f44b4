package regexlib

import "regexfa/internal/fa"

type nodeType int

const (
	nEmpty nodeType = iota // #
	nSymbol
	nOr
	nConcat
	nStar
	nPlus
	nOptional
)

// Node is one node of a syntax tree. Each node owns its children; trees are
// never shared.
type Node struct {
	typ   nodeType
	left  *Node
	right *Node

	sym fa.Symbol // for nSymbol
}

func emptyNode() *Node { return &Node{typ: nEmpty} }
func symbolNode(s fa.Symbol) *Node { return &Node{typ: nSymbol, sym: s} }
func binaryNode(t nodeType, a, b *Node) *Node { return &Node{typ: t, left: a, right: b} }
func unaryNode(t nodeType, a *Node) *Node { return &Node{typ: t, left: a} }

// String prints the tree back in postfix form.
func (n *Node) String() string {
	switch n.typ {
	case nEmpty:
		return string(opEmpty)
	case nSymbol:
		return n.sym.String()
	case nOr:
		return n.left.String() + n.right.String() + string(opUnion)
	case nConcat:
		return n.left.String() + n.right.String() + string(opConcat)
	case nStar:
		return n.left.String() + string(opStar)
	case nPlus:
		return n.left.String() + string(opPlus)
	case nOptional:
		return n.left.String() + string(opOptional)
	}
	return "?"
}

// ParsePostfix builds the syntax tree of a postfix stream such as "ab|*c.".
// It fails when an operator lacks operands, when a character is neither an
// operator nor an alphabet symbol, or when more than one tree is left over.
func ParsePostfix(postfix string) (*Node, error) {
	var stack []*Node
	pop := func() *Node {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for pos, c := range postfix {
		switch c {
		case opConcat, opUnion:
			if len(stack) < 2 {
				return nil, syntaxErr(pos, ErrMissingOperand)
			}
			// the operand popped second comes first
			b := pop()
			a := pop()
			typ := nConcat
			if c == opUnion {
				typ = nOr
			}
			stack = append(stack, binaryNode(typ, a, b))
		case opStar, opPlus, opOptional:
			if len(stack) < 1 {
				return nil, syntaxErr(pos, ErrMissingOperand)
			}
			typ := nStar
			switch c {
			case opPlus:
				typ = nPlus
			case opOptional:
				typ = nOptional
			}
			stack = append(stack, unaryNode(typ, pop()))
		case opEmpty:
			stack = append(stack, emptyNode())
		default:
			if !fa.InAlphabet(c) {
				return nil, syntaxErr(pos, ErrInvalidSymbol)
			}
			stack = append(stack, symbolNode(fa.Literal(c)))
		}
	}

	switch len(stack) {
	case 0:
		return nil, syntaxErr(-1, ErrEmptyPattern)
	case 1:
		return stack[0], nil
	}
	return nil, syntaxErr(-1, ErrMissingOperand)
}
