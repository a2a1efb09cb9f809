package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CrewPlanner_Go/internal/catalog"
	"github.com/osse101/CrewPlanner_Go/internal/demand"
	"github.com/osse101/CrewPlanner_Go/internal/domain"
	"github.com/osse101/CrewPlanner_Go/internal/profile"
	"github.com/osse101/CrewPlanner_Go/internal/report"
)

// MockProfileDecoder mocks the ProfileDecoder interface
type MockProfileDecoder struct {
	mock.Mock
}

func (m *MockProfileDecoder) DecodeReader(ctx context.Context, r io.Reader) (*domain.Profile, *profile.Summary, error) {
	// Drain the body so size limits apply as they would for a real decoder
	if _, err := io.ReadAll(r); err != nil {
		return nil, nil, err
	}
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Profile), args.Get(1).(*profile.Summary), args.Error(2)
}

// MockReportService mocks the report.Service interface
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Build(ctx context.Context, p *domain.Profile) (*report.Report, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Report), args.Error(1)
}

func (m *MockReportService) Ready(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		Crew:  []domain.OwnedCrew{{Symbol: "kirk", Level: 30, Rarity: 4, Owned: true}},
		Ships: []domain.OwnedShip{{Symbol: "enterprise", Level: 3}},
		Items: []domain.OwnedItem{{Symbol: "tricorder", Quantity: 9}},
	}
}

func testSummary() *profile.Summary {
	return &profile.Summary{Crew: 1, Ships: 1, Items: 1, SkippedCrew: 2}
}

func testReport() *report.Report {
	tr := demand.NewTracker()
	tr.Add("tricorder")

	return &report.Report{
		RunID: "run-1",
		Crew: []domain.HydratedCrew{{
			OwnedCrew: domain.OwnedCrew{Symbol: "kirk", Level: 30, Rarity: 4, Owned: true},
			Name:      "James T. Kirk",
			MaxRarity: 5,
		}},
		Ships: []domain.HydratedShip{{
			OwnedShip: domain.OwnedShip{Symbol: "enterprise", Level: 3},
			Name:      "USS Enterprise",
			Rarity:    4,
			MaxLevel:  10,
		}},
		Items: []domain.HydratedItem{{
			OwnedItem: domain.OwnedItem{Symbol: "tricorder", Quantity: 9},
			Name:      "Tricorder",
			Rarity:    2,
		}},
		Equipment: demand.Assemble([]domain.CraftCostRow{
			{CrewName: "James T. Kirk", CrewSymbol: "kirk", StartLevel: 30, CraftCost: 22, Demand: map[string]int{"tricorder": 1}},
		}, tr),
		Excluded: []demand.Exclusion{{CrewSymbol: "data", CrewName: "Data", Reason: "fully_equipped"}},
		Catalog:  catalog.Stats{Items: 3, Crew: 2, Ships: 1, Fingerprint: "abc"},
	}
}
