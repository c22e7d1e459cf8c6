// Package summarize aggregates the shape of a document: for every
// distinct shape path it counts leaf occurrences, per-type tallies and
// per-value tallies, and renders the result as an aligned report.
package summarize

import (
	"slices"

	"github.com/mbafford/cli-tools/debug"
	"github.com/mbafford/cli-tools/ir"
)

type Summary struct {
	Records map[string]*Record
}

// Record accumulates the leaf visits of one shape path. Types and
// Values keep first-seen order; counts only ever grow.
type Record struct {
	Count  int
	Types  []*TypeCount
	Values []*ValueCount

	typeIndex  map[ir.Type]int
	valueIndex map[valueKey]int
}

type TypeCount struct {
	Type  ir.Type
	Count int
}

// ValueCount tallies one distinct leaf value. The type is part of the
// identity so the string "1" and the number 1 stay distinct.
type ValueCount struct {
	Type    ir.Type
	Literal string
	Count   int
}

type valueKey struct {
	t   ir.Type
	lit string
}

func New() *Summary {
	return &Summary{Records: map[string]*Record{}}
}

func newRecord() *Record {
	return &Record{
		typeIndex:  map[ir.Type]int{},
		valueIndex: map[valueKey]int{},
	}
}

// Aggregate walks doc depth first and records every leaf under its
// shape path. It cannot fail on a well-formed document.
func Aggregate(doc *ir.Node) *Summary {
	sum := New()
	sum.Add(doc)
	return sum
}

func (s *Summary) Add(doc *ir.Node) {
	// the callback never errors, so neither can the walk
	_ = doc.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if !n.Type.IsLeaf() {
			return true, nil
		}
		s.record(n)
		return false, nil
	})
}

func (s *Summary) record(leaf *ir.Node) {
	path := leaf.ShapePath()
	if debug.Paths() {
		debug.Logf("visit %s %s\n", path, leaf.Type)
	}
	rec := s.Records[path]
	if rec == nil {
		rec = newRecord()
		s.Records[path] = rec
	}
	rec.Count++
	rec.addType(leaf.Type, 1)
	rec.addValue(leaf.Type, leaf.Literal(), 1)
}

func (r *Record) addType(t ir.Type, n int) {
	i, ok := r.typeIndex[t]
	if !ok {
		i = len(r.Types)
		r.typeIndex[t] = i
		r.Types = append(r.Types, &TypeCount{Type: t})
	}
	r.Types[i].Count += n
}

func (r *Record) addValue(t ir.Type, lit string, n int) {
	k := valueKey{t: t, lit: lit}
	i, ok := r.valueIndex[k]
	if !ok {
		i = len(r.Values)
		r.valueIndex[k] = i
		r.Values = append(r.Values, &ValueCount{Type: t, Literal: lit})
	}
	r.Values[i].Count += n
}

// Merge adds the counts of other into s, path for path. Merging the
// aggregate of a document into itself exactly doubles every count.
func (s *Summary) Merge(other *Summary) {
	for path, rec := range other.Records {
		dst := s.Records[path]
		if dst == nil {
			dst = newRecord()
			s.Records[path] = dst
		}
		dst.Count += rec.Count
		for _, tc := range rec.Types {
			dst.addType(tc.Type, tc.Count)
		}
		for _, vc := range rec.Values {
			dst.addValue(vc.Type, vc.Literal, vc.Count)
		}
	}
}

// Paths returns all shape paths in lexicographic order.
func (s *Summary) Paths() []string {
	paths := make([]string, 0, len(s.Records))
	for p := range s.Records {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Where returns a summary with only the records pred accepts. Records
// are shared, not copied.
func (s *Summary) Where(pred func(path string, rec *Record) bool) *Summary {
	res := New()
	for path, rec := range s.Records {
		if pred(path, rec) {
			res.Records[path] = rec
		}
	}
	return res
}

// TopValues returns up to n distinct values ordered by descending
// count, ties broken by first-seen order. Nulls carry no information
// beyond the type tally and are excluded.
func (r *Record) TopValues(n int) []*ValueCount {
	vals := make([]*ValueCount, 0, len(r.Values))
	for _, v := range r.Values {
		if v.Type == ir.NullType {
			continue
		}
		vals = append(vals, v)
	}
	slices.SortStableFunc(vals, func(a, b *ValueCount) int {
		return b.Count - a.Count
	})
	if len(vals) > n {
		vals = vals[:n]
	}
	return vals
}
