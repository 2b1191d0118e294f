package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/tally/internal/model"
)

func TestForView(t *testing.T) {
	tests := []struct {
		view      model.View
		wantFirst string
		wantLast  string
		wantCount int
	}{
		{view: model.ViewCompany, wantCount: 9, wantFirst: "site-3", wantLast: "site-13"},
		{view: model.ViewPersonal, wantCount: 7, wantFirst: "food", wantLast: "other"},
		{view: model.ViewIncome, wantCount: 3, wantFirst: "salary", wantLast: "reimbursement-received"},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			cats := ForView(tt.view)
			require.Len(t, cats, tt.wantCount)
			assert.Equal(t, tt.wantFirst, cats[0].ID)
			assert.Equal(t, tt.wantLast, cats[len(cats)-1].ID)
			for _, c := range cats {
				assert.NotEmpty(t, c.Name)
				assert.NotEmpty(t, c.Color)
			}
		})
	}
}

func TestCompanySiteColors(t *testing.T) {
	cats := ForView(model.ViewCompany)
	assert.Equal(t, "Site 3", cats[0].Name)
	assert.Equal(t, "#3b82f6", cats[0].Color)
	assert.Equal(t, "#6366f1", cats[8].Color)

	seen := make(map[string]bool)
	for _, c := range cats {
		assert.False(t, seen[c.Color], "color %s reused", c.Color)
		seen[c.Color] = true
	}
}

func TestPartitionsDoNotOverlap(t *testing.T) {
	seen := make(map[string]model.View)
	for _, v := range model.Views {
		for _, c := range ForView(v) {
			prev, dup := seen[c.ID]
			assert.False(t, dup, "%s appears in %s and %s", c.ID, prev, v)
			seen[c.ID] = v
		}
	}
	assert.Len(t, All(), len(seen))
}

func TestForViewReturnsCopy(t *testing.T) {
	cats := ForView(model.ViewPersonal)
	cats[0].Name = "changed"
	assert.Equal(t, "Food", ForView(model.ViewPersonal)[0].Name)
}

func TestLookup(t *testing.T) {
	c, ok := Lookup(model.ViewIncome, "side-hustle")
	require.True(t, ok)
	assert.Equal(t, "#f59e0b", c.Color)

	_, ok = Lookup(model.ViewPersonal, "salary")
	assert.False(t, ok, "lookups are scoped to the view's partition")

	assert.Equal(t, "Housing", DisplayName(model.ViewPersonal, "housing"))
	assert.Equal(t, "retired-id", DisplayName(model.ViewPersonal, "retired-id"))
	assert.Equal(t, "site-3", Default(model.ViewCompany).ID)
}
