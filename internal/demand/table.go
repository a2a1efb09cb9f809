package demand

import "github.com/osse101/CrewPlanner_Go/internal/domain"

// Row is one fixed-schema row of the equipment table. Cells is aligned with
// the owning table's Columns.
type Row struct {
	CrewName   string `json:"crew"`
	CrewSymbol string `json:"crew_symbol"`
	StartLevel int    `json:"start_level"`
	CraftCost  int    `json:"craft_cost"`
	Cells      []int  `json:"cells"`
}

// Table is the assembled equipment demand matrix
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Assemble builds the table from every crew candidate and the final column
// set. It must run after all crew have been resolved into tracker: columns
// are a snapshot of tracker at call time.
func Assemble(candidates []domain.CraftCostRow, tracker *Tracker) *Table {
	columns := tracker.Symbols()

	rows := make([]Row, 0, len(candidates))
	for _, c := range candidates {
		cells := make([]int, len(columns))
		for i, symbol := range columns {
			if q := c.Demand[symbol]; q > 0 {
				cells[i] = q
			}
		}
		rows = append(rows, Row{
			CrewName:   c.CrewName,
			CrewSymbol: c.CrewSymbol,
			StartLevel: c.StartLevel,
			CraftCost:  c.CraftCost,
			Cells:      cells,
		})
	}

	return &Table{Columns: columns, Rows: rows}
}
