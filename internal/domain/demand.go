package domain

// DemandEntry is the accumulated quantity of one base ingredient needed by a
// single crew member
type DemandEntry struct {
	Symbol   string `json:"symbol"`
	Quantity int    `json:"quantity"`
}

// CraftCostRow is the sparse demand of one crew member before table assembly.
// Symbols missing from Demand have a quantity of zero.
type CraftCostRow struct {
	CrewName   string         `json:"crew"`
	CrewSymbol string         `json:"crew_symbol"`
	StartLevel int            `json:"start_level"`
	CraftCost  int            `json:"craft_cost"`
	Demand     map[string]int `json:"demand"`
}

// Profile is the decoded player save
type Profile struct {
	Crew  []OwnedCrew `json:"crew"`
	Ships []OwnedShip `json:"ships"`
	Items []OwnedItem `json:"items"`
}
