package tables

import "strconv"

// Sicbo bet tags. Each covers a pair of totals with the same payout.
const (
	SicboTotal4And17 = 6
	SicboTotal6And15 = 8
	SicboTotal7And14 = 9
)

// Sicbo returns the three-dice game. Rows are totals, 3 through 18.
func Sicbo() *Game {
	return &Game{
		Name:        "sicbo",
		MinPosition: 3,
		MaxPosition: 18,
		Categories: []Category{
			{Name: "total-4-17", Tag: SicboTotal4And17, Layout: LayoutTotal, Rows: totals(4, 17)},
			{Name: "total-6-15", Tag: SicboTotal6And15, Layout: LayoutTotal, Rows: totals(6, 15)},
			{Name: "total-7-14", Tag: SicboTotal7And14, Layout: LayoutTotal, Rows: totals(7, 14)},
		},
	}
}

func totals(values ...int) []Row {
	rows := make([]Row, len(values))
	for i, v := range values {
		rows[i] = Row{Label: strconv.Itoa(v), Total: v}
	}
	return rows
}
