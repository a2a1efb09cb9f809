package export

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/CrewPlanner_Go/internal/demand"
	"github.com/osse101/CrewPlanner_Go/internal/domain"
	"github.com/osse101/CrewPlanner_Go/internal/report"
)

// Sheet names, in workbook order
const (
	SheetCrew      = "Crew"
	SheetItems     = "Items"
	SheetShips     = "Ships"
	SheetEquipment = "Equipment"
)

// Fixed Equipment sheet headers, followed by one column per demanded item
const (
	HeaderCrew      = "Crew"
	HeaderLevel     = "Level"
	HeaderCraftCost = "Craft cost"
)

// Sheet is a header row plus records, all cells rendered as text
type Sheet struct {
	Name   string     `json:"name"`
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Field is one column of a record sheet
type Field[T any] struct {
	Label string
	Value func(*T) string
}

// ItemLookup resolves item metadata for column headers
type ItemLookup interface {
	Item(symbol string) (*domain.ReferenceItem, bool)
}

// BuildSheet renders records with fields
func BuildSheet[T any](name string, fields []Field[T], records []T) Sheet {
	s := Sheet{
		Name:   name,
		Header: make([]string, len(fields)),
		Rows:   make([][]string, 0, len(records)),
	}
	for i, f := range fields {
		s.Header[i] = f.Label
	}
	for i := range records {
		row := make([]string, len(fields))
		for j, f := range fields {
			row[j] = f.Value(&records[i])
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// CrewFields are the Crew sheet columns
func CrewFields() []Field[domain.HydratedCrew] {
	return []Field[domain.HydratedCrew]{
		{"Name", func(c *domain.HydratedCrew) string { return c.Name }},
		{"Symbol", func(c *domain.HydratedCrew) string { return c.Symbol }},
		{"Owned", func(c *domain.HydratedCrew) string { return strconv.FormatBool(c.Owned) }},
		{"Rarity", func(c *domain.HydratedCrew) string { return strconv.Itoa(c.Rarity) }},
		{"Max rarity", func(c *domain.HydratedCrew) string { return strconv.Itoa(c.MaxRarity) }},
		{"Level", func(c *domain.HydratedCrew) string { return strconv.Itoa(c.Level) }},
		{"Equipment", func(c *domain.HydratedCrew) string { return strconv.Itoa(c.EquippedCount()) }},
	}
}

// ShipFields are the Ships sheet columns
func ShipFields() []Field[domain.HydratedShip] {
	return []Field[domain.HydratedShip]{
		{"Name", func(s *domain.HydratedShip) string { return s.Name }},
		{"Symbol", func(s *domain.HydratedShip) string { return s.Symbol }},
		{"Rarity", func(s *domain.HydratedShip) string { return domain.RarityName(s.Rarity) }},
		{"Level", func(s *domain.HydratedShip) string { return strconv.Itoa(s.Level) }},
		{"Max level", func(s *domain.HydratedShip) string { return strconv.Itoa(s.MaxLevel) }},
	}
}

// ItemFields are the Items sheet columns
func ItemFields() []Field[domain.HydratedItem] {
	return []Field[domain.HydratedItem]{
		{"Name", func(i *domain.HydratedItem) string { return i.Name }},
		{"Symbol", func(i *domain.HydratedItem) string { return i.Symbol }},
		{"Rarity", func(i *domain.HydratedItem) string { return domain.RarityName(i.Rarity) }},
		{"Quantity", func(i *domain.HydratedItem) string { return strconv.Itoa(i.Quantity) }},
	}
}

// EquipmentSheet renders the assembled demand table. Item columns are
// titled "<Rarity> <Name>"; symbols missing from items fall back to a
// title-cased symbol.
func EquipmentSheet(table *demand.Table, items ItemLookup) Sheet {
	s := Sheet{
		Name:   SheetEquipment,
		Header: append([]string{HeaderCrew, HeaderLevel, HeaderCraftCost}, ColumnHeaders(table.Columns, items)...),
		Rows:   make([][]string, 0, len(table.Rows)),
	}
	for _, r := range table.Rows {
		row := make([]string, 0, 3+len(r.Cells))
		row = append(row, r.CrewName, strconv.Itoa(r.StartLevel), strconv.Itoa(r.CraftCost))
		for _, q := range r.Cells {
			row = append(row, strconv.Itoa(q))
		}
		s.Rows = append(s.Rows, row)
	}
	return s
}

// ColumnHeaders titles each demanded symbol
func ColumnHeaders(symbols []string, items ItemLookup) []string {
	headers := make([]string, len(symbols))
	for i, symbol := range symbols {
		headers[i] = ColumnHeader(symbol, items)
	}
	return headers
}

// ColumnHeader titles a single demanded symbol
func ColumnHeader(symbol string, items ItemLookup) string {
	if items != nil {
		if item, ok := items.Item(symbol); ok {
			return fmt.Sprintf("%s %s", domain.RarityName(item.Rarity), item.Name)
		}
	}
	// Casers carry state and are not shared between goroutines
	return cases.Title(language.English).String(strings.ReplaceAll(symbol, "_", " "))
}

// Workbook renders every sheet of a report in workbook order
func Workbook(r *report.Report) []Sheet {
	return []Sheet{
		BuildSheet(SheetCrew, CrewFields(), r.Crew),
		BuildSheet(SheetItems, ItemFields(), r.Items),
		BuildSheet(SheetShips, ShipFields(), r.Ships),
		EquipmentSheet(r.Equipment, r),
	}
}

// SheetByName renders a single sheet of a report. Names match
// case-insensitively.
func SheetByName(r *report.Report, name string) (Sheet, bool) {
	switch strings.ToLower(name) {
	case strings.ToLower(SheetCrew):
		return BuildSheet(SheetCrew, CrewFields(), r.Crew), true
	case strings.ToLower(SheetItems):
		return BuildSheet(SheetItems, ItemFields(), r.Items), true
	case strings.ToLower(SheetShips):
		return BuildSheet(SheetShips, ShipFields(), r.Ships), true
	case strings.ToLower(SheetEquipment):
		return EquipmentSheet(r.Equipment, r), true
	}
	return Sheet{}, false
}
