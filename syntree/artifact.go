package syntree

import (
	"fmt"

	"github.com/npillmayer/splc"
	"github.com/npillmayer/splc/lexer"
)

// RootRecord describes the root of a tree.
type RootRecord struct {
	ID       int
	Symbol   string
	Children []int
}

// InnerRecord describes an inner node below the root.
type InnerRecord struct {
	ID       int
	Symbol   string
	Parent   int
	Children []int
}

// LeafRecord describes a leaf. The terminal symbol of a leaf is not recorded,
// it is derived from the token class and value.
type LeafRecord struct {
	Parent int
	ID     int
	Class  splc.TokClass
	Value  string
}

// Artifact is a flat representation of a syntax tree, with nodes linked by
// id. Records are in pre-order of the tree.
type Artifact struct {
	Root   RootRecord
	Inner  []InnerRecord
	Leaves []LeafRecord
}

// Artifact flattens t.
func (t *Tree) Artifact() *Artifact {
	a := &Artifact{}
	t.Walk(func(n *Node, depth int) error {
		if n == t.Root {
			a.Root = RootRecord{ID: n.ID, Symbol: n.Symbol, Children: childIDs(n)}
		} else if tok, ok := n.Token(); ok {
			a.Leaves = append(a.Leaves, LeafRecord{
				Parent: n.parent,
				ID:     n.ID,
				Class:  tok.Class(),
				Value:  tok.Lexeme(),
			})
		} else {
			a.Inner = append(a.Inner, InnerRecord{
				ID:       n.ID,
				Symbol:   n.Symbol,
				Parent:   n.parent,
				Children: childIDs(n),
			})
		}
		return nil
	})
	return a
}

func childIDs(n *Node) []int {
	ids := make([]int, len(n.children))
	for k, c := range n.children {
		ids[k] = c.ID
	}
	return ids
}

// Rebuild reconstructs a tree from an artifact by following child ids from
// the root. Every record has to be reachable exactly once, and parent ids
// have to match.
//
// Tokens of rebuilt leaves carry id -1 and line 0, as artifacts record
// neither.
func Rebuild(a *Artifact) (*Tree, error) {
	inner := make(map[int]*InnerRecord, len(a.Inner))
	leaves := make(map[int]*LeafRecord, len(a.Leaves))
	for k := range a.Inner {
		r := &a.Inner[k]
		if _, dup := inner[r.ID]; dup || r.ID == a.Root.ID {
			return nil, fmt.Errorf("duplicate node id %d in tree artifact", r.ID)
		}
		inner[r.ID] = r
	}
	for k := range a.Leaves {
		r := &a.Leaves[k]
		if _, dup := inner[r.ID]; dup || r.ID == a.Root.ID {
			return nil, fmt.Errorf("duplicate node id %d in tree artifact", r.ID)
		}
		if _, dup := leaves[r.ID]; dup {
			return nil, fmt.Errorf("duplicate node id %d in tree artifact", r.ID)
		}
		leaves[r.ID] = r
	}
	root := NewInner(a.Root.ID, a.Root.Symbol)
	b := rebuilder{inner: inner, leaves: leaves, visited: make(map[int]bool)}
	if err := b.attach(root, a.Root.Children); err != nil {
		return nil, err
	}
	if len(b.visited) != len(inner)+len(leaves) {
		return nil, fmt.Errorf("tree artifact has %d records not reachable from root",
			len(inner)+len(leaves)-len(b.visited))
	}
	return NewTree(root)
}

type rebuilder struct {
	inner   map[int]*InnerRecord
	leaves  map[int]*LeafRecord
	visited map[int]bool
}

func (b *rebuilder) attach(parent *Node, children []int) error {
	for _, id := range children {
		if b.visited[id] {
			return fmt.Errorf("node %d referenced more than once in tree artifact", id)
		}
		b.visited[id] = true
		if r, ok := b.inner[id]; ok {
			if r.Parent != parent.ID {
				return fmt.Errorf("node %d: parent is %d, but listed as child of %d", id, r.Parent, parent.ID)
			}
			n := NewInner(r.ID, r.Symbol)
			parent.AppendChild(n)
			if err := b.attach(n, r.Children); err != nil {
				return err
			}
		} else if r, ok := b.leaves[id]; ok {
			if r.Parent != parent.ID {
				return fmt.Errorf("leaf %d: parent is %d, but listed as child of %d", id, r.Parent, parent.ID)
			}
			tok := lexer.MakeToken(r.Class, r.Value, -1, 0)
			parent.AppendChild(NewLeaf(r.ID, tok.Terminal(), tok))
		} else {
			return fmt.Errorf("node %d of tree artifact not found", id)
		}
	}
	return nil
}
