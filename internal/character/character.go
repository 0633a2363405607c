// Package character holds per-character base data and the weapon firing
// model used to turn a normal attack into a sustained multiplier-per-second
// rate.
package character

import "fmt"

// Stats is the per-character base data the damage engine consumes.
type Stats struct {
	Attack       float64
	Ammo         int
	Reload       float64 // seconds for a full reload
	Weapon       Weapon
	NormalDamage float64 // multiplier of one normal attack
	Element      string
}

// Weapon identifies a weapon class.
type Weapon string

const (
	AR  Weapon = "AR"
	SMG Weapon = "SMG"
	SR  Weapon = "SR"
	RL  Weapon = "RL"
	MG  Weapon = "MG"
	SG  Weapon = "SG"
)

type weaponProfile struct {
	attackSpeed   float64 // shots per second
	windUpSeconds float64
	windUpAmmo    int
}

// Empirical firing characteristics per weapon class. MG spends two seconds
// and 43 rounds spinning up before reaching full rate.
var weaponTable = map[Weapon]weaponProfile{
	AR:  {attackSpeed: 12},
	SMG: {attackSpeed: 20},
	SR:  {attackSpeed: 4.4},
	RL:  {attackSpeed: 4.4},
	MG:  {attackSpeed: 59, windUpSeconds: 2, windUpAmmo: 43},
	SG:  {attackSpeed: 1.5},
}

// NormalDPS returns the sustained normal-attack multiplier per second over
// one fire-and-reload cycle. damage is the per-shot multiplier; ammo and
// reload are the post-buff magazine size and reload seconds. A non-positive
// reload degenerates to the infinite-ammo peak rate.
func NormalDPS(damage float64, ammo int, reload float64, weapon Weapon) (float64, error) {
	p, ok := weaponTable[weapon]
	if !ok {
		return 0, fmt.Errorf("unknown weapon class %q", weapon)
	}
	if reload <= 0 {
		return damage * p.attackSpeed, nil
	}
	shots := float64(ammo - p.windUpAmmo)
	return damage * shots / (shots/p.attackSpeed + p.windUpSeconds + reload), nil
}

// PeakNormalDPS is the infinite-ammo ceiling for the weapon class.
func PeakNormalDPS(damage float64, weapon Weapon) (float64, error) {
	p, ok := weaponTable[weapon]
	if !ok {
		return 0, fmt.Errorf("unknown weapon class %q", weapon)
	}
	return damage * p.attackSpeed, nil
}

// NormalDPS computes the character's sustained normal-attack rate from its
// own stats.
func (s Stats) NormalDPS() (float64, error) {
	return NormalDPS(s.NormalDamage, s.Ammo, s.Reload, s.Weapon)
}
