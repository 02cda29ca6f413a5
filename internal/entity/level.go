package entity

// Level tracks experience and character level.
type Level struct {
	Current       int
	XP            int
	XPGiven       int // Awarded to whoever kills this actor
	LevelUpBase   int
	LevelUpFactor int
}

// LevelChoice is a stat to raise on level up.
type LevelChoice int

const (
	ChoiceConstitution LevelChoice = iota
	ChoiceStrength
	ChoiceAgility
)

// Stat increases granted by each level-up choice.
const (
	ConstitutionBonus = 20
	StrengthBonus     = 1
	AgilityBonus      = 1
)

// XPToNextLevel returns the total XP needed to advance.
func (l *Level) XPToNextLevel() int {
	return l.LevelUpBase + l.Current*l.LevelUpFactor
}

// RequiresLevelUp reports whether enough XP has been banked.
// Actors without a level-up curve never level.
func (l *Level) RequiresLevelUp() bool {
	if l.LevelUpBase <= 0 {
		return false
	}
	return l.XP >= l.XPToNextLevel()
}

// AddXP banks experience and reports whether a level up is now due.
func (l *Level) AddXP(xp int) bool {
	if xp <= 0 || l.LevelUpBase <= 0 {
		return false
	}
	l.XP += xp
	return l.RequiresLevelUp()
}

// LevelUp spends the banked XP for one level and applies the chosen stat.
func (e *Entity) LevelUp(choice LevelChoice) {
	if e.Level == nil || e.Fighter == nil {
		return
	}
	e.Level.XP -= e.Level.XPToNextLevel()
	e.Level.Current++

	switch choice {
	case ChoiceConstitution:
		e.Fighter.MaxHP += ConstitutionBonus
		e.Fighter.HP += ConstitutionBonus
	case ChoiceStrength:
		e.Fighter.BasePower += StrengthBonus
	case ChoiceAgility:
		e.Fighter.BaseDefense += AgilityBonus
	}
}
