// Package config loads the static game-balance data: per-character base
// stats with their skill effect tables, and enemy stat blocks. It produces
// already-validated records; all interpretation happens in the plan and
// damage layers.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KHP-Millennium/nikke-sim-room/internal/character"
)

// Effect is one entry in a skill's effect list. Buff-typed entries carry the
// modifier percentages and override counters that become Buff records; other
// types (damage lines) are read directly by scenario code. Start, End and
// Stacks are only meaningful for custom effects authored in a plan file.
type Effect struct {
	Type string `yaml:"type"`

	Damage float64 `yaml:"damage,omitempty"`

	Attack        float64 `yaml:"attack,omitempty"`
	FlatAtk       float64 `yaml:"flat_atk,omitempty"`
	ChargeDmg     float64 `yaml:"charge_dmg,omitempty"`
	FullChargeDmg float64 `yaml:"full_charge_dmg,omitempty"`
	DamageTaken   float64 `yaml:"damage_taken,omitempty"`
	ElementDmg    float64 `yaml:"element_dmg,omitempty"`
	DamageUp      float64 `yaml:"damage_up,omitempty"`
	Defense       float64 `yaml:"defense,omitempty"`
	CritRate      float64 `yaml:"crit_rate,omitempty"`
	CritDmg       float64 `yaml:"crit_dmg,omitempty"`
	CoreDmg       float64 `yaml:"core_dmg,omitempty"`
	RangeDmg      float64 `yaml:"range_dmg,omitempty"`
	FullBurstDmg  float64 `yaml:"full_burst_dmg,omitempty"`

	CoreHit      int `yaml:"core_hit,omitempty"`
	RangeBonus   int `yaml:"range_bonus,omitempty"`
	FullBurst    int `yaml:"full_burst,omitempty"`
	ElementBonus int `yaml:"element_bonus,omitempty"`

	// Ammo and ReloadSpeed adjust the firing cycle, not the damage formula.
	Ammo        float64 `yaml:"ammo,omitempty"`
	ReloadSpeed float64 `yaml:"reload,omitempty"`

	Duration float64 `yaml:"duration,omitempty"`
	Start    float64 `yaml:"start,omitempty"`
	End      float64 `yaml:"end,omitempty"`
	Stacks   int     `yaml:"stacks,omitempty"`
}

// IsBuff reports whether the effect entry feeds the buff aggregate.
func (e Effect) IsBuff() bool {
	return e.Type == "buff" || e.Type == "stack_buff"
}

// Skill is a named skill: a type marker and its ordered effect list.
type Skill struct {
	Type    string   `yaml:"type"`
	Effects []Effect `yaml:"effects"`
}

// Character is one character's balance entry.
type Character struct {
	Attack    float64 `yaml:"attack"`
	Ammo      int     `yaml:"ammo"`
	Reload    float64 `yaml:"reload"`
	Weapon    string  `yaml:"weapon"`
	Normal    float64 `yaml:"normal"`
	Element   string  `yaml:"element"`
	MaxHealth float64 `yaml:"max_health,omitempty"`

	Skill1 Skill `yaml:"skill_1"`
	Skill2 Skill `yaml:"skill_2"`
	Burst  Skill `yaml:"burst"`
}

// Stats converts the balance entry into the engine's base-stat record.
func (c Character) Stats() character.Stats {
	return character.Stats{
		Attack:       c.Attack,
		Ammo:         c.Ammo,
		Reload:       c.Reload,
		Weapon:       character.Weapon(c.Weapon),
		NormalDamage: c.Normal,
		Element:      c.Element,
	}
}

// Enemy is one enemy stat block.
type Enemy struct {
	Attack  float64 `yaml:"attack"`
	Defense float64 `yaml:"defense"`
}

// Config holds all loaded balance data.
type Config struct {
	Characters map[string]Character
	Enemies    map[string]Enemy
}

// Load reads characters.yaml and enemies.yaml from the config directory.
func Load(dir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filepath.Join(dir, "characters.yaml"))
	if err != nil {
		return nil, err
	}
	var chars struct {
		Characters map[string]Character `yaml:"characters"`
	}
	if err := yaml.Unmarshal(data, &chars); err != nil {
		return nil, fmt.Errorf("characters.yaml: %w", err)
	}
	cfg.Characters = chars.Characters

	data, err = os.ReadFile(filepath.Join(dir, "enemies.yaml"))
	if err != nil {
		return nil, err
	}
	var enemies struct {
		Enemies map[string]Enemy `yaml:"enemies"`
	}
	if err := yaml.Unmarshal(data, &enemies); err != nil {
		return nil, fmt.Errorf("enemies.yaml: %w", err)
	}
	cfg.Enemies = enemies.Enemies

	return cfg, nil
}

// Character returns the named character's balance entry.
func (c *Config) Character(name string) (Character, error) {
	ch, ok := c.Characters[name]
	if !ok {
		return Character{}, fmt.Errorf("unknown character %q", name)
	}
	return ch, nil
}

// Attack returns the named character's base attack.
func (c *Config) Attack(name string) (float64, error) {
	ch, err := c.Character(name)
	if err != nil {
		return 0, err
	}
	return ch.Attack, nil
}

// EnemyDefense returns the named enemy's defense value.
func (c *Config) EnemyDefense(name string) (float64, error) {
	e, ok := c.Enemies[name]
	if !ok {
		return 0, fmt.Errorf("unknown enemy %q", name)
	}
	return e.Defense, nil
}
