package tables

import "strconv"

// Roulette bet tags.
const (
	RouletteStraightUp = 1
	RouletteCorner     = 4
	RouletteLine       = 5
	RouletteColumn     = 6
	RouletteDozen      = 7
	RouletteOddEven    = 9
)

// Roulette returns the single-zero wheel, positions 0 through 36.
func Roulette() *Game {
	return &Game{
		Name:        "roulette",
		MinPosition: 0,
		MaxPosition: 36,
		Categories: []Category{
			{Name: "straight-up", Tag: RouletteStraightUp, Rows: straightUpRows()},
			{Name: "corner", Tag: RouletteCorner, Rows: labelled(cornerGroups)},
			{Name: "line", Tag: RouletteLine, Rows: labelled(lineGroups)},
			{Name: "column", Tag: RouletteColumn, Rows: []Row{
				{Label: "1st", Positions: []int{1, 4, 7, 10, 13, 16, 19, 22, 25, 28, 31, 34}},
				{Label: "2nd", Positions: []int{2, 5, 8, 11, 14, 17, 20, 23, 26, 29, 32, 35}},
				{Label: "3rd", Positions: []int{3, 6, 9, 12, 15, 18, 21, 24, 27, 30, 33, 36}},
			}},
			{Name: "dozen", Tag: RouletteDozen, Rows: []Row{
				{Label: "1-12", Positions: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
				{Label: "13-24", Positions: []int{13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24}},
				{Label: "25-36", Positions: []int{25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36}},
			}},
			{Name: "odd-even", Tag: RouletteOddEven, Rows: []Row{
				{Label: "odd", Positions: []int{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25, 27, 29, 31, 33, 35}},
				{Label: "even", Positions: []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36}},
			}},
		},
	}
}

func straightUpRows() []Row {
	rows := make([]Row, 0, 37)
	for n := 0; n <= 36; n++ {
		rows = append(rows, Row{Label: strconv.Itoa(n), Positions: []int{n}})
	}
	return rows
}

func labelled(groups [][]int) []Row {
	rows := make([]Row, len(groups))
	for i, g := range groups {
		rows[i] = Row{Label: joinLabel(g), Positions: append([]int(nil), g...)}
	}
	return rows
}

var cornerGroups = [][]int{
	{0, 1, 2, 3},
	{1, 2, 4, 5},
	{2, 3, 5, 6},
	{4, 5, 7, 8},
	{5, 6, 8, 9},
	{7, 8, 10, 11},
	{8, 9, 11, 12},
	{10, 11, 13, 14},
	{11, 12, 14, 15},
	{13, 14, 16, 17},
	{14, 15, 17, 18},
	{16, 17, 19, 20},
	{17, 18, 20, 21},
	{19, 20, 22, 23},
	{20, 21, 23, 24},
	{22, 23, 25, 26},
	{23, 24, 26, 27},
	{25, 26, 28, 29},
	{26, 27, 29, 30},
	{28, 29, 31, 32},
	{29, 30, 32, 33},
	{31, 32, 34, 35},
	{32, 33, 35, 36},
}

// Six-number lines: two adjacent streets.
var lineGroups = [][]int{
	{1, 2, 3, 4, 5, 6},
	{4, 5, 6, 7, 8, 9},
	{7, 8, 9, 10, 11, 12},
	{10, 11, 12, 13, 14, 15},
	{13, 14, 15, 16, 17, 18},
	{16, 17, 18, 19, 20, 21},
	{19, 20, 21, 22, 23, 24},
	{22, 23, 24, 25, 26, 27},
	{25, 26, 27, 28, 29, 30},
	{28, 29, 30, 31, 32, 33},
	{31, 32, 33, 34, 35, 36},
}
