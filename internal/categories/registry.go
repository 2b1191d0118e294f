// Package categories holds the fixed category partitions for each view.
package categories

import (
	"fmt"

	"github.com/Veraticus/tally/internal/model"
)

// siteColors is cycled across company sites in registry order.
var siteColors = []string{
	"#3b82f6", // blue
	"#8b5cf6", // violet
	"#10b981", // emerald
	"#ef4444", // red
	"#f97316", // orange
	"#eab308", // yellow
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#6366f1", // indigo
}

var siteNumbers = []int{3, 5, 7, 8, 9, 10, 11, 12, 13}

var (
	companySites = buildCompanySites()

	personal = []model.Category{
		{ID: "food", Name: "Food", Icon: "🍜", Color: "#10b981"},
		{ID: "shopping", Name: "Shopping", Icon: "🛒", Color: "#3b82f6"},
		{ID: "housing", Name: "Housing", Icon: "🏠", Color: "#f97316"},
		{ID: "transport", Name: "Transport", Icon: "🚚", Color: "#6366f1"},
		{ID: "entertainment", Name: "Entertainment", Icon: "✨", Color: "#ec4899"},
		{ID: "health", Name: "Health", Icon: "❤", Color: "#ef4444"},
		{ID: "other", Name: "Other", Icon: "🔧", Color: "#6b7280"},
	}

	income = []model.Category{
		{ID: "salary", Name: "Salary", Icon: "💴", Color: "#22c55e"},
		{ID: "side-hustle", Name: "Side hustle", Icon: "💼", Color: "#f59e0b"},
		{ID: "reimbursement-received", Name: "Reimbursement received", Icon: "🧾", Color: "#3b82f6"},
	}
)

func buildCompanySites() []model.Category {
	sites := make([]model.Category, len(siteNumbers))
	for i, n := range siteNumbers {
		sites[i] = model.Category{
			ID:    fmt.Sprintf("site-%d", n),
			Name:  fmt.Sprintf("Site %d", n),
			Icon:  "🏢",
			Color: siteColors[i%len(siteColors)],
		}
	}
	return sites
}

// ForView returns the partition that applies to v. The returned slice is a
// copy; callers may modify it freely. Unknown views get the personal partition.
func ForView(v model.View) []model.Category {
	switch v {
	case model.ViewCompany:
		return clone(companySites)
	case model.ViewIncome:
		return clone(income)
	default:
		return clone(personal)
	}
}

// All returns every category across all partitions in view order.
func All() []model.Category {
	all := make([]model.Category, 0, len(companySites)+len(personal)+len(income))
	for _, v := range model.Views {
		all = append(all, ForView(v)...)
	}
	return all
}

// Lookup finds a category by id within the partition for v.
func Lookup(v model.View, id string) (model.Category, bool) {
	for _, c := range ForView(v) {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// DisplayName returns the category name for id, or the raw id when the
// category is not in the partition.
func DisplayName(v model.View, id string) string {
	if c, ok := Lookup(v, id); ok {
		return c.Name
	}
	return id
}

// Default returns the first category of the partition for v. It is used
// where a category must be prefilled, as in statement imports.
func Default(v model.View) model.Category {
	return ForView(v)[0]
}

func clone(cats []model.Category) []model.Category {
	out := make([]model.Category, len(cats))
	copy(out, cats)
	return out
}
