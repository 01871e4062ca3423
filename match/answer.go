// SPDX-License-Identifier: MIT
// Package: flowmatch/match
//
// answer.go: ordered left→right mapping produced by Extract.

package match

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Pair is one matched (left, right) couple.
type Pair struct {
	Left  string `json:"left" yaml:"left"`
	Right string `json:"right" yaml:"right"`
}

// Answer is the result of a matching: the max-flow value and the left→right
// mapping ordered by left label. An Answer is read-only once returned.
type Answer struct {
	maxFlow int64
	pairs   *redblacktree.Tree // left label → right label
}

func newAnswer(maxFlow int64) *Answer {
	return &Answer{
		maxFlow: maxFlow,
		pairs:   redblacktree.NewWithStringComparator(),
	}
}

func (a *Answer) put(left, right string) {
	a.pairs.Put(left, right)
}

// MaxFlow returns the max-flow value, which equals Len().
func (a *Answer) MaxFlow() int64 { return a.maxFlow }

// Len returns the number of matches.
func (a *Answer) Len() int { return a.pairs.Size() }

// Lookup returns the right entity matched to left.
func (a *Answer) Lookup(left string) (string, bool) {
	v, ok := a.pairs.Get(left)
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Matches returns every pair in lexicographic order of the left label.
func (a *Answer) Matches() []Pair {
	out := make([]Pair, 0, a.pairs.Size())
	it := a.pairs.Iterator()
	for it.Next() {
		out = append(out, Pair{Left: it.Key().(string), Right: it.Value().(string)})
	}

	return out
}

// Map returns the matching as a plain map.
func (a *Answer) Map() map[string]string {
	out := make(map[string]string, a.pairs.Size())
	it := a.pairs.Iterator()
	for it.Next() {
		out[it.Key().(string)] = it.Value().(string)
	}

	return out
}
