// Package gamify maps accumulated XP to level tiers for the coach's quest
// system.
package gamify

import "math"

type LevelInfo struct {
	Level       int    `json:"level"`
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	MinXp       int    `json:"min_xp"`
	MaxXp       int    `json:"max_xp"` // -1 on the final tier (unbounded)
	NextLevelXp int    `json:"next_level_xp"`
	Progress    int    `json:"progress"` // 0-100
}

type tier struct {
	level  int
	title  string
	icon   string
	minXp  int
	maxXp  int // math.MaxInt for the open-ended top tier
}

var levelTiers = []tier{
	{1, "Beginner", "🌱", 0, 99},
	{2, "Committed", "💪", 100, 299},
	{3, "Disciplined", "🎯", 300, 599},
	{4, "Dedicated", "⭐", 600, 999},
	{5, "Expert", "🏆", 1000, 1499},
	{6, "Master", "👑", 1500, 2099},
	{7, "Champion", "🔥", 2100, math.MaxInt},
}

func LevelFor(xp int) LevelInfo {
	current := levelTiers[0]
	for _, t := range levelTiers {
		if xp >= t.minXp && xp <= t.maxXp {
			current = t
			break
		}
	}

	if current.maxXp == math.MaxInt {
		return LevelInfo{
			Level:       current.level,
			Title:       current.title,
			Icon:        current.icon,
			MinXp:       current.minXp,
			MaxXp:       -1,
			NextLevelXp: current.minXp,
			Progress:    100,
		}
	}

	nextLevelXp := current.maxXp + 1
	xpInLevel := xp - current.minXp
	xpNeeded := nextLevelXp - current.minXp
	progress := xpInLevel * 100 / xpNeeded
	if progress > 100 {
		progress = 100
	}

	return LevelInfo{
		Level:       current.level,
		Title:       current.title,
		Icon:        current.icon,
		MinXp:       current.minXp,
		MaxXp:       current.maxXp,
		NextLevelXp: nextLevelXp,
		Progress:    progress,
	}
}

// XpToNextLevel returns 0 when the top tier is reached.
func XpToNextLevel(xp int) int {
	info := LevelFor(xp)
	if info.MaxXp == -1 {
		return 0
	}
	return info.NextLevelXp - xp
}
