package entity

import (
	"testing"

	apperrors "github.com/samdwyer/embercrypt/internal/errors"
	"github.com/samdwyer/embercrypt/internal/gamedata"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	reg, err := gamedata.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error = %v", err)
	}
	c, err := NewCatalog(reg)
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}
	return c
}

func TestFighterHeal(t *testing.T) {
	tests := []struct {
		name       string
		hp, maxHP  int
		amount     int
		wantHP     int
		wantHealed int
	}{
		{"partial", 10, 30, 25, 30, 20},
		{"exact", 10, 30, 5, 15, 5},
		{"full", 30, 30, 10, 30, 0},
		{"zero amount", 10, 30, 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Fighter{MaxHP: tt.maxHP, HP: tt.hp}
			got := f.Heal(tt.amount)
			if got != tt.wantHealed {
				t.Errorf("Heal(%d) = %d, want %d", tt.amount, got, tt.wantHealed)
			}
			if f.HP != tt.wantHP {
				t.Errorf("HP = %d, want %d", f.HP, tt.wantHP)
			}
			if got, want := f.IsFullHealth(), tt.wantHP == tt.maxHP; got != want {
				t.Errorf("IsFullHealth() = %v, want %v", got, want)
			}
		})
	}
}

func TestSetHPClampsAndDiesOnce(t *testing.T) {
	c := testCatalog(t)
	imp := c.MustSpawn("imp")

	if died := imp.SetHP(1000); died {
		t.Error("SetHP(1000) reported death")
	}
	if imp.Fighter.HP != imp.Fighter.MaxHP {
		t.Errorf("HP = %d, want clamped to %d", imp.Fighter.HP, imp.Fighter.MaxHP)
	}

	if died := imp.TakeDamage(imp.Fighter.MaxHP + 5); !died {
		t.Fatal("TakeDamage() past 0 should kill")
	}
	if imp.Fighter.HP != 0 {
		t.Errorf("HP = %d, want 0", imp.Fighter.HP)
	}
	if imp.IsAlive() || imp.BlocksMovement || !imp.Corpse {
		t.Error("dead actor should be an inert, non-blocking corpse")
	}
	if imp.RenderOrder != RenderCorpse || imp.Glyph.Rune != '%' {
		t.Errorf("corpse render = (%v, %q), want (%v, '%%')", imp.RenderOrder, imp.Glyph.Rune, RenderCorpse)
	}

	if died := imp.TakeDamage(5); died {
		t.Error("corpse died twice")
	}
}

func TestPowerAndDefenseIncludeEquipment(t *testing.T) {
	c := testCatalog(t)
	player := c.MustSpawn("player")
	sword := c.MustSpawn("sword")
	mail := c.MustSpawn("chain_mail")
	if err := player.Carry(sword); err != nil {
		t.Fatal(err)
	}
	if err := player.Carry(mail); err != nil {
		t.Fatal(err)
	}

	basePower, baseDefense := player.Power(), player.Defense()
	player.Equipment.Toggle(sword)
	player.Equipment.Toggle(mail)

	if got, want := player.Power(), basePower+sword.Equippable.PowerBonus; got != want {
		t.Errorf("Power() = %d, want %d", got, want)
	}
	if got, want := player.Defense(), baseDefense+mail.Equippable.DefenseBonus; got != want {
		t.Errorf("Defense() = %d, want %d", got, want)
	}
}

func TestEquipmentToggle(t *testing.T) {
	c := testCatalog(t)
	player := c.MustSpawn("player")
	dagger := c.MustSpawn("dagger")
	sword := c.MustSpawn("sword")

	changes := player.Equipment.Toggle(dagger)
	if len(changes) != 1 || changes[0].Kind != Equipped || changes[0].Item != dagger {
		t.Fatalf("Toggle(dagger) = %+v, want one Equipped change", changes)
	}

	// Swapping reports the displaced item first.
	changes = player.Equipment.Toggle(sword)
	if len(changes) != 2 {
		t.Fatalf("Toggle(sword) returned %d changes, want 2", len(changes))
	}
	if changes[0].Kind != Unequipped || changes[0].Item != dagger {
		t.Errorf("first change = %+v, want dagger unequipped", changes[0])
	}
	if changes[1].Kind != Equipped || changes[1].Item != sword {
		t.Errorf("second change = %+v, want sword equipped", changes[1])
	}

	// Applying twice returns to the starting state.
	player.Equipment.Toggle(sword)
	if player.Equipment.IsEquipped(sword) {
		t.Error("double toggle should unequip")
	}
	player.Equipment.Toggle(sword)
	if !player.Equipment.IsEquipped(sword) {
		t.Error("toggle after unequip should equip")
	}
}

func TestCarryRespectsCapacity(t *testing.T) {
	c := testCatalog(t)
	player := c.MustSpawn("player")
	player.Inventory.Capacity = 2

	for i := 0; i < 2; i++ {
		if err := player.Carry(c.MustSpawn("health_potion")); err != nil {
			t.Fatalf("Carry() #%d error = %v", i, err)
		}
	}
	err := player.Carry(c.MustSpawn("health_potion"))
	if !apperrors.HasCode(err, apperrors.CodeInventoryFull) {
		t.Errorf("Carry() on full inventory error = %v, want %s", err, apperrors.CodeInventoryFull)
	}
	if len(player.Inventory.Items) != 2 {
		t.Errorf("len(Items) = %d, want 2", len(player.Inventory.Items))
	}
}

func TestReleaseUnequipsFirst(t *testing.T) {
	c := testCatalog(t)
	player := c.MustSpawn("player")
	player.Place(4, 7)
	armor := c.MustSpawn("leather_armor")
	if err := player.Carry(armor); err != nil {
		t.Fatal(err)
	}
	player.Equipment.Toggle(armor)

	changes, err := player.Release(armor)
	if err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if len(changes) != 1 || changes[0].Kind != Unequipped {
		t.Errorf("Release() changes = %+v, want one Unequipped", changes)
	}
	if player.Inventory.Contains(armor) {
		t.Error("released item still in inventory")
	}
	if armor.Location.Kind != OnMap || armor.X != 4 || armor.Y != 7 {
		t.Errorf("released item at %v (%d,%d), want on map at (4,7)", armor.Location.Kind, armor.X, armor.Y)
	}
}

func TestSpawnDeepCopies(t *testing.T) {
	c := testCatalog(t)
	a := c.MustSpawn("imp")
	b := c.MustSpawn("imp")

	if a.ID == b.ID {
		t.Error("spawned entities share an ID")
	}
	a.TakeDamage(3)
	if b.Fighter.HP != b.Fighter.MaxHP {
		t.Error("spawned entities share a Fighter")
	}
	if _, err := c.Spawn("dragon"); err == nil {
		t.Error("Spawn(unknown) should fail")
	}
}

func TestCloneRemapsEquipment(t *testing.T) {
	c := testCatalog(t)
	player := c.MustSpawn("player")
	dagger := c.MustSpawn("dagger")
	if err := player.Carry(dagger); err != nil {
		t.Fatal(err)
	}
	player.Equipment.Toggle(dagger)

	clone := player.Clone()
	cloned := clone.Inventory.Items[0]
	if cloned == dagger {
		t.Fatal("Clone() shared inventory items")
	}
	if clone.Equipment.Slots[SlotWeapon] != cloned {
		t.Error("cloned equipment does not point at cloned item")
	}
	if cloned.Location.Holder != clone {
		t.Error("cloned item holder not remapped")
	}
}

func TestConfusionWrapsAndRestores(t *testing.T) {
	c := testCatalog(t)
	imp := c.MustSpawn("imp")

	imp.Confuse(3)
	if imp.AI.Kind != AIConfused || imp.AI.TurnsRemaining != 3 {
		t.Fatalf("AI = %+v, want confused for 3 turns", imp.AI)
	}
	if !imp.RecoverFromConfusion() {
		t.Fatal("RecoverFromConfusion() = false")
	}
	if imp.AI.Kind != AIHostile {
		t.Errorf("AI.Kind = %v, want %v", imp.AI.Kind, AIHostile)
	}
	if imp.RecoverFromConfusion() {
		t.Error("RecoverFromConfusion() on unconfused actor = true")
	}
}

func TestLevelUp(t *testing.T) {
	c := testCatalog(t)
	player := c.MustSpawn("player")
	need := player.Level.XPToNextLevel()

	if player.Level.AddXP(need - 1) {
		t.Error("AddXP() below threshold requested level up")
	}
	if !player.Level.AddXP(1) {
		t.Fatal("AddXP() at threshold did not request level up")
	}

	maxHP := player.Fighter.MaxHP
	player.LevelUp(ChoiceConstitution)
	if player.Level.Current != 2 {
		t.Errorf("Level = %d, want 2", player.Level.Current)
	}
	if player.Level.XP != 0 {
		t.Errorf("XP = %d, want 0", player.Level.XP)
	}
	if player.Fighter.MaxHP != maxHP+ConstitutionBonus {
		t.Errorf("MaxHP = %d, want %d", player.Fighter.MaxHP, maxHP+ConstitutionBonus)
	}

	imp := c.MustSpawn("imp")
	if imp.Level.AddXP(1000) {
		t.Error("monsters should never level")
	}
}
