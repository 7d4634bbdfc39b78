package syntree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/splc/lexer"
)

// NoParent is the parent id of root nodes and detached nodes.
const NoParent = -1

// Node is a node of a syntax tree.
type Node struct {
	ID       int
	Symbol   string
	parent   int
	children []*Node
	token    *lexer.Token
}

// NewInner creates an inner node for a non-terminal.
func NewInner(id int, symbol string) *Node {
	return &Node{ID: id, Symbol: symbol, parent: NoParent}
}

// NewLeaf creates a leaf node for a terminal, carrying a token.
func NewLeaf(id int, symbol string, token lexer.Token) *Node {
	return &Node{ID: id, Symbol: symbol, parent: NoParent, token: &token}
}

// Parent returns the id of the parent node, or NoParent.
func (n *Node) Parent() int {
	return n.parent
}

// Children returns the ordered children of n. Callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// Token returns the token of a leaf.
func (n *Node) Token() (lexer.Token, bool) {
	if n.token == nil {
		return lexer.Token{}, false
	}
	return *n.token, true
}

// IsLeaf is true for nodes created from a token.
func (n *Node) IsLeaf() bool {
	return n.token != nil
}

// AppendChild appends c to the children of n. c must not have a parent.
func (n *Node) AppendChild(c *Node) {
	c.parent = n.ID
	n.children = append(n.children, c)
}

// Detach removes child c from n. It returns false if c is not a child of n.
func (n *Node) Detach(c *Node) bool {
	for k := len(n.children) - 1; k >= 0; k-- { // c is usually the last child
		if n.children[k] == c {
			n.children = append(n.children[:k], n.children[k+1:]...)
			c.parent = NoParent
			return true
		}
	}
	return false
}

func (n *Node) String() string {
	if n.token != nil {
		return fmt.Sprintf("(%d %s %q)", n.ID, n.Symbol, n.token.Lexeme())
	}
	return fmt.Sprintf("(%d %s)", n.ID, n.Symbol)
}

// --- Trees -----------------------------------------------------------------

// Tree is a syntax tree with an index of its nodes by id.
type Tree struct {
	Root  *Node
	index map[int]*Node
}

// NewTree creates a tree for a root node, indexing all nodes below it.
// Node ids have to be unique within the tree.
func NewTree(root *Node) (*Tree, error) {
	t := &Tree{Root: root, index: make(map[int]*Node)}
	err := t.Walk(func(n *Node, depth int) error {
		if _, dup := t.index[n.ID]; dup {
			return fmt.Errorf("duplicate node id %d", n.ID)
		}
		t.index[n.ID] = n
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Node returns the node with a given id, or nil.
func (t *Tree) Node(id int) *Node {
	return t.index[id]
}

// Size returns the number of nodes in t.
func (t *Tree) Size() int {
	return len(t.index)
}

// SkipChildren may be returned by a walker function to skip the children of
// the current node.
var SkipChildren = errors.New("skip children")

// Walk traverses t in pre-order, calling f for every node with its depth
// (0 for the root). If f returns an error, the walk stops, except for
// SkipChildren.
func (t *Tree) Walk(f func(n *Node, depth int) error) error {
	if t.Root == nil {
		return nil
	}
	return walk(t.Root, 0, f)
}

func walk(n *Node, depth int, f func(*Node, int) error) error {
	if err := f(n, depth); err != nil {
		if err == SkipChildren {
			return nil
		}
		return err
	}
	for _, c := range n.children {
		if err := walk(c, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}
