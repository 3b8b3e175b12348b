package maze

import "github.com/zucenko/mazechase/model"

// CellSet is a disjoint-set forest over every position of a cols x rows grid.
// It only lives for the duration of one generation.
type CellSet struct {
	cols   int
	parent []int
	rank   []int
}

func NewCellSet(cols, rows int) *CellSet {
	n := cols * rows
	s := &CellSet{
		cols:   cols,
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

func (s *CellSet) Index(c model.Coord) int {
	return c.Index(s.cols)
}

// Find returns the root of i and relinks every node on the way directly to it.
func (s *CellSet) Find(i int) int {
	root := i
	for s.parent[root] != root {
		root = s.parent[root]
	}
	for s.parent[i] != root {
		next := s.parent[i]
		s.parent[i] = root
		i = next
	}
	return root
}

// Union merges the sets of a and b by rank. On a tie the root of a survives.
func (s *CellSet) Union(a, b model.Coord) {
	i := s.Find(s.Index(a))
	j := s.Find(s.Index(b))
	switch {
	case i == j:
	case s.rank[i] > s.rank[j]:
		s.parent[j] = i
	case s.rank[j] > s.rank[i]:
		s.parent[i] = j
	default:
		s.parent[j] = i
		s.rank[i]++
	}
}

func (s *CellSet) Connected(a, b model.Coord) bool {
	return s.Find(s.Index(a)) == s.Find(s.Index(b))
}
