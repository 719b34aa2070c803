package models

// Discovery categories accepted by the nature endpoints.
const (
	CategoryFlowers = "flowers"
	CategoryTrees   = "trees"
	CategoryRocks   = "rocks"
)

// ValidCategory reports whether c is one of the known discovery categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryFlowers, CategoryTrees, CategoryRocks:
		return true
	}
	return false
}

// DiscoveryResult is the outcome of recording a label.
type DiscoveryResult struct {
	Success       bool   `json:"success"`
	Category      string `json:"category"`
	Label         string `json:"label"`
	AlreadyExists bool   `json:"alreadyExists"`
}

// CategoryCounts holds per-category totals for one user.
type CategoryCounts struct {
	Flower int64 `json:"flower"`
	Tree   int64 `json:"tree"`
	Rock   int64 `json:"rock"`
}

// CategoryAchievements flags categories whose label count reached the
// achievement threshold.
type CategoryAchievements struct {
	Flower bool `json:"flower"`
	Tree   bool `json:"tree"`
	Rock   bool `json:"rock"`
}

// NatureSummary is the naturedex payload: discovery counts plus earned
// achievements per category.
type NatureSummary struct {
	Counts       CategoryCounts       `json:"counts"`
	Achievements CategoryAchievements `json:"achievements"`
}
