// Package past builds the postfix-atom-stream-to-AST representation used by
// the direct DFA builder.
package past

import "github.com/ATSOTECK/yalex/internal/model"

// Node is a binary tree node over a regex AST. Nullary nodes (Kind ==
// Literal or Epsilon) are leaves; Star is unary (only Left is set); Or and
// Concat are binary.
//
// Pos, Nullable, FirstPos, and LastPos are zero until the direct DFA
// builder's position-annotation pass fills them in; past itself only
// ever produces Kind/Value/Name/Left/Right.
type Node struct {
	Kind  model.AtomKind
	Value byte   // meaningful only when Kind == model.AtomLiteral
	Name  string // meaningful only when Kind == model.AtomNamedTerminator

	Left  *Node
	Right *Node

	// Populated by internal/dfa during the direct-DFA build.
	Pos      int
	Nullable bool
	FirstPos map[int]bool
	LastPos  map[int]bool
}

func leaf(kind model.AtomKind) *Node {
	return &Node{Kind: kind}
}

func literal(b byte) *Node {
	return &Node{Kind: model.AtomLiteral, Value: b}
}

// NamedTerminator builds the lex-spec sequencer's per-branch accept leaf
// wrapping a pattern's AST under one of these marks which branch of
// a combined DFA a given accept state belongs to.
func NamedTerminator(name string) *Node {
	return &Node{Kind: model.AtomNamedTerminator, Name: name}
}

func unary(kind model.AtomKind, child *Node) *Node {
	return &Node{Kind: kind, Left: child}
}

func binary(kind model.AtomKind, left, right *Node) *Node {
	return &Node{Kind: kind, Left: left, Right: right}
}

// DeepCopy duplicates the subtree rooted at n. Required by `+` desugaring:
// the two occurrences of the repeated operand must later receive distinct
// position ids.
func (n *Node) DeepCopy() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Kind:  n.Kind,
		Value: n.Value,
		Name:  n.Name,
		Left:  n.Left.DeepCopy(),
		Right: n.Right.DeepCopy(),
	}
}

// Concat builds a binary concatenation node. Exported for callers outside
// past that assemble ASTs directly, such as the lex-spec sequencer joining
// several compiled patterns into one combined AST.
func Concat(left, right *Node) *Node { return binary(model.AtomConcat, left, right) }

// Or builds a binary alternation node, exported for the same reason as
// Concat.
func Or(left, right *Node) *Node { return binary(model.AtomOr, left, right) }

// IsLeaf reports whether n is a nullary node.
func (n *Node) IsLeaf() bool {
	switch n.Kind {
	case model.AtomLiteral, model.AtomEpsilon, model.AtomTerminator, model.AtomNamedTerminator:
		return true
	default:
		return false
	}
}

// PostOrder walks the tree in post-order, visiting children before n.
func (n *Node) PostOrder(visit func(*Node)) {
	if n == nil {
		return
	}
	n.Left.PostOrder(visit)
	n.Right.PostOrder(visit)
	visit(n)
}
