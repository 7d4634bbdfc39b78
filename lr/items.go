package lr

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/splc/lr/iteratable"
)

// Item is an LR(0) item, i.e. a rule with a dot somewhere in its RHS.
type Item struct {
	rule *Rule
	dot  int
}

// StartItem returns the item with the dot in front of the RHS of r, together
// with the symbol after the dot (nil for epsilon rules).
func StartItem(r *Rule) (Item, *Symbol) {
	i := Item{rule: r}
	return i, i.PeekSymbol()
}

// Rule returns the rule of an item.
func (i Item) Rule() *Rule {
	return i.rule
}

// PeekSymbol returns the symbol after the dot, or nil if the dot is at the end.
func (i Item) PeekSymbol() *Symbol {
	if i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// Advance returns a new item with the dot moved over the next symbol.
func (i Item) Advance() Item {
	if i.dot >= len(i.rule.rhs) {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1}
}

// Prefix returns the symbols in front of the dot.
func (i Item) Prefix() []*Symbol {
	return i.rule.rhs[:i.dot]
}

// IsComplete is true if the dot is behind the RHS.
func (i Item) IsComplete() bool {
	return i.dot >= len(i.rule.rhs)
}

func (i Item) String() string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s ::= [", i.rule.LHS.Name)
	for k, sym := range i.rule.rhs {
		if k == i.dot {
			b.WriteString("• ")
		}
		b.WriteString(sym.Name)
		if k < len(i.rule.rhs)-1 {
			b.WriteString(" ")
		}
	}
	if i.IsComplete() {
		b.WriteString(" •")
	}
	b.WriteString("]")
	return b.String()
}

// itemComparator orders items by rule serial, then by dot position.
func itemComparator(a, b interface{}) int {
	i1, i2 := a.(Item), b.(Item)
	if c := utils.IntComparator(i1.rule.Serial, i2.rule.Serial); c != 0 {
		return c
	}
	return utils.IntComparator(i1.dot, i2.dot)
}

func newItemSet() *iteratable.Set {
	return iteratable.NewSet(itemComparator)
}

func asItem(x interface{}) Item {
	return x.(Item)
}

// Dump is a debugging helper, tracing the items of an item set.
func Dump(iset *iteratable.Set) {
	for _, x := range iset.Values() {
		tracer().Debugf("%s", asItem(x))
	}
}

func itemSetString(S *iteratable.Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	for k, x := range S.Values() {
		if k == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(asItem(x).String())
	}
	b.WriteString(" }")
	return b.String()
}
