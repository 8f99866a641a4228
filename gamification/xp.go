package gamification

// Level derives a user's level from cumulative XP. Levels start at 1 and
// advance every 100 XP; the value is never stored.
func Level(xp int) int {
	return 1 + xp/100
}

// XPForNextLevel returns the cumulative XP at which the given level ends.
func XPForNextLevel(level int) int {
	return level * 100
}

// ProgressToNextLevel returns how far into the current level the user is,
// as a 0-100 percentage. With 100 XP per level the percentage equals the XP
// earned since the level floor.
func ProgressToNextLevel(xp int) int {
	return xp - (XPForNextLevel(Level(xp)) - 100)
}
