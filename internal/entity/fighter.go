package entity

// Fighter holds combat stats. HP is kept within [0, MaxHP].
type Fighter struct {
	MaxHP       int
	HP          int
	BaseDefense int
	BasePower   int
}

// NewFighter creates a fighter at full health.
func NewFighter(hp, defense, power int) *Fighter {
	return &Fighter{
		MaxHP:       hp,
		HP:          hp,
		BaseDefense: defense,
		BasePower:   power,
	}
}

// Heal restores HP and returns the amount actually recovered.
// It returns 0 when already at full health.
func (f *Fighter) Heal(amount int) int {
	if amount <= 0 || f.HP >= f.MaxHP {
		return 0
	}
	newHP := f.clamp(f.HP + amount)
	recovered := newHP - f.HP
	f.HP = newHP
	return recovered
}

// IsFullHealth reports whether HP equals MaxHP.
func (f *Fighter) IsFullHealth() bool {
	return f.HP >= f.MaxHP
}

func (f *Fighter) clamp(value int) int {
	return max(0, min(value, f.MaxHP))
}
