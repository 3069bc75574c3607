package unit

import (
	"slices"
	"sync"
)

// Match is a complete suffix found in the tree: the table row it spells and
// the prefixes used on each side. A missing prefix has an empty Symbol and
// Factor 1.
type Match struct {
	Def       *Def
	NumPrefix Prefix
	DenPrefix Prefix
}

type node struct {
	children map[rune]*node
	final    *Match
}

// Tree is a rune trie over every legal unit suffix. It is immutable once
// built and safe for concurrent readers.
type Tree struct {
	root node
	size int
}

var noPrefix = Prefix{Factor: 1}

// BuildTree indexes defs. Bare symbols are inserted first, then prefixed
// spellings; when two spellings collide the earlier insertion wins.
func BuildTree(defs []Def) *Tree {
	t := &Tree{}
	for i := range defs {
		d := &defs[i]
		t.insert(d.Symbol, Match{Def: d, NumPrefix: noPrefix, DenPrefix: noPrefix})
	}
	for i := range defs {
		d := &defs[i]
		if d.IsCompound() {
			nums := append([]Prefix{noPrefix}, d.NumGroup.Prefixes()...)
			dens := append([]Prefix{noPrefix}, d.DenGroup.Prefixes()...)
			for _, np := range nums {
				for _, dp := range dens {
					if np.Symbol == "" && dp.Symbol == "" {
						continue
					}
					sym := np.Symbol + d.Parts.Num + "/" + dp.Symbol + d.Parts.Den
					t.insert(sym, Match{Def: d, NumPrefix: np, DenPrefix: dp})
				}
			}
			continue
		}
		for _, p := range d.NumGroup.Prefixes() {
			t.insert(p.Symbol+d.Symbol, Match{Def: d, NumPrefix: p, DenPrefix: noPrefix})
		}
	}
	return t
}

func (t *Tree) insert(sym string, m Match) {
	n := &t.root
	for _, r := range sym {
		if n.children == nil {
			n.children = make(map[rune]*node)
		}
		next, ok := n.children[r]
		if !ok {
			next = &node{}
			n.children[r] = next
		}
		n = next
	}
	if n.final != nil {
		return
	}
	n.final = &m
	t.size++
}

var defaultTree = sync.OnceValue(func() *Tree {
	return BuildTree(table)
})

// DefaultTree returns the shared tree over Units().
func DefaultTree() *Tree {
	return defaultTree()
}

// Size returns the number of distinct suffixes in the tree.
func (t *Tree) Size() int {
	return t.size
}

// Lookup matches suffix exactly.
func (t *Tree) Lookup(suffix string) (Match, bool) {
	n := &t.root
	for _, r := range suffix {
		next, ok := n.children[r]
		if !ok {
			return Match{}, false
		}
		n = next
	}
	if n.final == nil {
		return Match{}, false
	}
	return *n.final, true
}

// Walk calls fn for every suffix in lexicographic order until fn returns false.
func (t *Tree) Walk(fn func(suffix string, m Match) bool) {
	var buf []rune
	var visit func(n *node) bool
	visit = func(n *node) bool {
		if n.final != nil && !fn(string(buf), *n.final) {
			return false
		}
		keys := make([]rune, 0, len(n.children))
		for r := range n.children {
			keys = append(keys, r)
		}
		slices.Sort(keys)
		for _, r := range keys {
			buf = append(buf, r)
			if !visit(n.children[r]) {
				return false
			}
			buf = buf[:len(buf)-1]
		}
		return true
	}
	visit(&t.root)
}

// Classify reports the table row spelled by suffix in the default tree.
func Classify(suffix string) (*Def, bool) {
	m, ok := DefaultTree().Lookup(suffix)
	if !ok {
		return nil, false
	}
	return m.Def, true
}
