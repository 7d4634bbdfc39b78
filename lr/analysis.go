package lr

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// LRAnalysis is an object for grammar analysis (compute FIRST and FOLLOW sets
// and the set of nullable non-terminals).
// Sets of terminals are represented as treesets of symbol values.
type LRAnalysis struct {
	g          *Grammar
	nullable   map[*Symbol]bool
	firstSets  map[*Symbol]*treeset.Set
	followSets map[*Symbol]*treeset.Set
}

// Analysis creates an analyser for a grammar and runs the analysis.
func Analysis(g *Grammar) *LRAnalysis {
	ga := &LRAnalysis{
		g:          g,
		nullable:   make(map[*Symbol]bool),
		firstSets:  make(map[*Symbol]*treeset.Set),
		followSets: make(map[*Symbol]*treeset.Set),
	}
	ga.g.EachSymbol(func(A *Symbol) interface{} {
		ga.firstSets[A] = treeset.NewWithIntComparator()
		ga.followSets[A] = treeset.NewWithIntComparator()
		if A.IsTerminal() {
			ga.firstSets[A].Add(A.Value)
		}
		return nil
	})
	ga.markNullable()
	ga.computeFirst()
	ga.computeFollow()
	return ga
}

// Grammar returns the grammar this analyser operates on.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// DerivesEpsilon returns true if A =>* ε.
func (ga *LRAnalysis) DerivesEpsilon(A *Symbol) bool {
	return ga.nullable[A]
}

// First returns FIRST(A), as a set of symbol values of terminals.
// Epsilon is never a member; use DerivesEpsilon to check for it.
func (ga *LRAnalysis) First(A *Symbol) *treeset.Set {
	return ga.firstSets[A]
}

// Follow returns FOLLOW(A), as a set of symbol values of terminals.
func (ga *LRAnalysis) Follow(A *Symbol) *treeset.Set {
	return ga.followSets[A]
}

func (ga *LRAnalysis) markNullable() {
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			if ga.nullable[r.LHS] {
				continue
			}
			if ga.sequenceNullable(r.rhs) {
				ga.nullable[r.LHS] = true
				changed = true
			}
		}
	}
}

func (ga *LRAnalysis) sequenceNullable(syms []*Symbol) bool {
	for _, sym := range syms {
		if !ga.nullable[sym] {
			return false
		}
	}
	return true
}

// firstOfSequence computes FIRST(X1 … Xn).
func (ga *LRAnalysis) firstOfSequence(syms []*Symbol) *treeset.Set {
	F := treeset.NewWithIntComparator()
	for _, sym := range syms {
		F.Add(ga.firstSets[sym].Values()...)
		if !ga.nullable[sym] {
			break
		}
	}
	return F
}

func (ga *LRAnalysis) computeFirst() {
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			F := ga.firstSets[r.LHS]
			size := F.Size()
			F.Add(ga.firstOfSequence(r.rhs).Values()...)
			changed = changed || F.Size() > size
		}
	}
	tracer().Debugf("FIRST sets computed for %s", ga.g.Name)
}

func (ga *LRAnalysis) computeFollow() {
	ga.followSets[ga.g.Start()].Add(ga.g.EOF().Value)
	for changed := true; changed; {
		changed = false
		for _, r := range ga.g.rules {
			for i, B := range r.rhs {
				if B.IsTerminal() {
					continue
				}
				F := ga.followSets[B]
				size := F.Size()
				beta := r.rhs[i+1:]
				F.Add(ga.firstOfSequence(beta).Values()...)
				if ga.sequenceNullable(beta) {
					F.Add(ga.followSets[r.LHS].Values()...)
				}
				changed = changed || F.Size() > size
			}
		}
	}
	tracer().Debugf("FOLLOW sets computed for %s", ga.g.Name)
}
