package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CrewPlanner_Go/internal/domain"
)

func TestNew(t *testing.T) {
	items := []domain.ReferenceItem{{Symbol: "duranium", Name: "Duranium", UnitCost: 2}}
	crew := []domain.ReferenceCrew{{Symbol: "kirk", Name: "Kirk"}}
	ships := []domain.ReferenceShip{{Symbol: "enterprise", Name: "Enterprise"}}

	c, err := New(items, crew, ships)
	require.NoError(t, err)

	item, ok := c.Item("duranium")
	require.True(t, ok)
	assert.Equal(t, 2, item.UnitCost)

	_, ok = c.Item("tritanium")
	assert.False(t, ok)

	member, ok := c.Crew("kirk")
	require.True(t, ok)
	assert.Equal(t, "Kirk", member.Name)

	ship, ok := c.Ship("enterprise")
	require.True(t, ok)
	assert.Equal(t, "Enterprise", ship.Name)

	assert.Equal(t, Stats{Items: 1, Crew: 1, Ships: 1}, c.Stats())
	assert.Empty(t, c.Fingerprint())
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		items   []domain.ReferenceItem
		crew    []domain.ReferenceCrew
		ships   []domain.ReferenceShip
		wantErr error
		errMsg  string
	}{
		{
			name:    "duplicate item",
			items:   []domain.ReferenceItem{{Symbol: "a"}, {Symbol: "a"}},
			wantErr: domain.ErrDuplicateSymbol,
			errMsg:  "item 'a'",
		},
		{
			name:    "duplicate crew",
			crew:    []domain.ReferenceCrew{{Symbol: "kirk"}, {Symbol: "kirk"}},
			wantErr: domain.ErrDuplicateSymbol,
			errMsg:  "crew 'kirk'",
		},
		{
			name:    "duplicate ship",
			ships:   []domain.ReferenceShip{{Symbol: "s"}, {Symbol: "s"}},
			wantErr: domain.ErrDuplicateSymbol,
		},
		{
			name:    "empty symbol",
			items:   []domain.ReferenceItem{{Symbol: "a"}, {Symbol: ""}},
			wantErr: domain.ErrInvalidCatalog,
			errMsg:  "index 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.items, tt.crew, tt.ships)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestNew_EmptyCatalog(t *testing.T) {
	c, err := New(nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, c.Stats())
}
