package tables

import (
	"github.com/lox/betnumbers/betnumber"
)

// Index maps bet numbers back to the rows that produce them.
type Index struct {
	entries map[betnumber.Identifier][]Entry
}

// NewIndex encodes every category of every game.
func NewIndex(games ...*Game) (*Index, error) {
	idx := &Index{entries: make(map[betnumber.Identifier][]Entry)}
	for _, g := range games {
		entries, err := g.EncodeAll()
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			idx.entries[e.ID] = append(idx.entries[e.ID], e)
		}
	}
	return idx, nil
}

// Lookup returns the rows encoding to id, if any.
func (idx *Index) Lookup(id betnumber.Identifier) []Entry {
	return idx.entries[id]
}

// Len is the number of distinct bet numbers indexed.
func (idx *Index) Len() int {
	return len(idx.entries)
}
