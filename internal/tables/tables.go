// Package tables holds the position groups behind every bet category and
// turns them into bet numbers.
package tables

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/betnumbers/betnumber"
)

// Layout selects how a row is packed below the tag byte.
type Layout int

const (
	// LayoutMask sets one bit per covered position.
	LayoutMask Layout = iota
	// LayoutTotal stores a single dice total in the byte below the tag.
	LayoutTotal
)

func (l Layout) String() string {
	switch l {
	case LayoutMask:
		return "mask"
	case LayoutTotal:
		return "total"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout accepts "mask" or "total". An empty string means mask.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mask":
		return LayoutMask, nil
	case "total":
		return LayoutTotal, nil
	default:
		return 0, fmt.Errorf("unknown layout %q (want mask or total)", s)
	}
}

// Row is one bet within a category.
type Row struct {
	Label     string
	Positions []int // LayoutMask
	Total     int   // LayoutTotal
}

// Category is a family of bets sharing a tag, e.g. the three columns.
type Category struct {
	Name   string
	Tag    int
	Layout Layout
	Rows   []Row
}

// Game groups the categories of one casino game together with the range of
// positions (or totals) its rows may use.
type Game struct {
	Name        string
	MinPosition int
	MaxPosition int
	Categories  []Category
}

// Entry is an encoded row.
type Entry struct {
	Game     string
	Category string
	Row      Row
	Tag      int
	Layout   Layout
	ID       betnumber.Identifier
}

// Label is "game/category/row".
func (e Entry) Label() string {
	return e.Game + "/" + e.Category + "/" + e.Row.Label
}

// Games returns fresh copies of the built-in games.
func Games() []*Game {
	return []*Game{Roulette(), Sicbo()}
}

// Lookup returns the built-in game with the given name.
func Lookup(name string) (*Game, error) {
	return Find(Games(), name)
}

// Find returns the game with the given name from games.
func Find(games []*Game, name string) (*Game, error) {
	for _, g := range games {
		if strings.EqualFold(g.Name, name) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("unknown game %q (available: %s)", name, strings.Join(names(games), ", "))
}

func names(games []*Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.Name)
	}
	return out
}

// CategoryNames lists categories in table order.
func (g *Game) CategoryNames() []string {
	out := make([]string, 0, len(g.Categories))
	for _, c := range g.Categories {
		out = append(out, c.Name)
	}
	return out
}

// Category finds a category by name.
func (g *Game) Category(name string) (*Category, error) {
	for i := range g.Categories {
		if strings.EqualFold(g.Categories[i].Name, name) {
			return &g.Categories[i], nil
		}
	}
	return nil, fmt.Errorf("%s: unknown category %q (available: %s)",
		g.Name, name, strings.Join(g.CategoryNames(), ", "))
}

// EncodeCategory encodes every row of the named category, in table order.
func (g *Game) EncodeCategory(name string) ([]Entry, error) {
	c, err := g.Category(name)
	if err != nil {
		return nil, err
	}
	return g.encode(c)
}

// EncodeAll encodes every category, in table order.
func (g *Game) EncodeAll() ([]Entry, error) {
	var out []Entry
	for i := range g.Categories {
		entries, err := g.encode(&g.Categories[i])
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

func (g *Game) encode(c *Category) ([]Entry, error) {
	if len(c.Rows) == 0 {
		return nil, fmt.Errorf("%s/%s: no rows", g.Name, c.Name)
	}

	entries := make([]Entry, 0, len(c.Rows))
	for _, row := range c.Rows {
		id, err := g.encodeRow(c, row)
		if err != nil {
			return nil, fmt.Errorf("%s/%s/%s: %w", g.Name, c.Name, row.Label, err)
		}
		entries = append(entries, Entry{
			Game:     g.Name,
			Category: c.Name,
			Row:      row,
			Tag:      c.Tag,
			Layout:   c.Layout,
			ID:       id,
		})
	}
	return entries, nil
}

func (g *Game) encodeRow(c *Category, row Row) (betnumber.Identifier, error) {
	switch c.Layout {
	case LayoutMask:
		if len(row.Positions) == 0 {
			return betnumber.Identifier{}, &betnumber.FieldError{Field: "positions", Err: betnumber.ErrEmptyPositionSet}
		}
		for _, p := range row.Positions {
			if p < g.MinPosition || p > g.MaxPosition {
				return betnumber.Identifier{}, &betnumber.FieldError{
					Field: "position",
					Value: p,
					Err:   fmt.Errorf("%w: %s uses %d..%d", betnumber.ErrInvalidPosition, g.Name, g.MinPosition, g.MaxPosition),
				}
			}
		}
		return betnumber.Encode(c.Tag, row.Positions...)
	case LayoutTotal:
		if row.Total < g.MinPosition || row.Total > g.MaxPosition {
			return betnumber.Identifier{}, &betnumber.FieldError{
				Field: "total",
				Value: row.Total,
				Err:   fmt.Errorf("%w: %s uses %d..%d", betnumber.ErrInvalidTotal, g.Name, g.MinPosition, g.MaxPosition),
			}
		}
		return betnumber.EncodeTotal(c.Tag, row.Total)
	default:
		return betnumber.Identifier{}, fmt.Errorf("unsupported layout %s", c.Layout)
	}
}

// AddCategory appends c after the built-in categories. Names must stay unique.
func (g *Game) AddCategory(c Category) error {
	if _, err := g.Category(c.Name); err == nil {
		return fmt.Errorf("%s: category %q already defined", g.Name, c.Name)
	}
	g.Categories = append(g.Categories, c)
	return nil
}

// joinLabel renders positions as "1-2-4-5".
func joinLabel(positions []int) string {
	sorted := append([]int(nil), positions...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, p := range sorted {
		parts[i] = fmt.Sprint(p)
	}
	return strings.Join(parts, "-")
}
