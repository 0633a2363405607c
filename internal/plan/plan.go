// Package plan turns human-authored scenario descriptions (which skills
// fire when, full-burst uptime, ad-hoc custom modifiers) into the raw buff
// records the sweep engine consumes. It is the only layer that knows the
// skill reference syntax; the engine below only ever sees resolved buffs.
package plan

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
	"github.com/KHP-Millennium/nikke-sim-room/internal/config"
)

// Window schedules one or more of a character's skills over a time span.
// A zero Duration defers to each effect's own duration from the balance
// data; zero Stacks means one.
type Window struct {
	Skills   []string `yaml:"skills"`
	Start    float64  `yaml:"start"`
	Duration float64  `yaml:"duration,omitempty"`
	Stacks   int      `yaml:"stacks,omitempty"`
}

// Timeline repeats the same skills at each start time.
func Timeline(skills []string, starts []float64, duration float64) []Window {
	windows := make([]Window, len(starts))
	for i, start := range starts {
		windows[i] = Window{Skills: skills, Start: start, Duration: duration}
	}
	return windows
}

// Infinite returns an always-on window.
func Infinite(skills []string, stacks int) Window {
	return Window{
		Skills:   skills,
		Start:    math.Inf(-1),
		Duration: math.Inf(1),
		Stacks:   stacks,
	}
}

// FullBurstUniform marks full-burst uptime of the given duration at each
// burst start.
func FullBurstUniform(starts []float64, duration float64) []Window {
	windows := make([]Window, len(starts))
	for i, start := range starts {
		windows[i] = Window{Start: start, Duration: duration}
	}
	return windows
}

// Plan is a full scenario: per-character skill windows, full-burst uptime
// windows, and raw custom effects appended as-is.
type Plan struct {
	Characters map[string][]Window `yaml:"characters"`
	FullBurst  []Window            `yaml:"full_burst,omitempty"`
	Custom     []config.Effect     `yaml:"custom,omitempty"`
}

// Build compiles the plan against the balance config into raw buff records.
// Skill references use the s1/s2/b syntax with an optional _N depth suffix
// limiting how many effect entries apply (e.g. "s1_3" for the first three).
func Build(cfg *config.Config, p Plan) ([]buffs.Buff, error) {
	var out []buffs.Buff

	for name, windows := range p.Characters {
		ch, err := cfg.Character(name)
		if err != nil {
			return nil, err
		}
		for _, w := range windows {
			for _, ref := range w.Skills {
				skill, depth, err := resolveSkill(ch, ref)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", name, err)
				}
				effects := skill.Effects
				if depth > 0 && depth < len(effects) {
					effects = effects[:depth]
				}
				for _, eff := range effects {
					if !eff.IsBuff() {
						continue
					}
					b := eff.Buff()
					applyWindow(&b, w, eff.Duration)
					if w.Stacks > 0 {
						b.Stacks = w.Stacks
					}
					if err := b.Validate(); err != nil {
						return nil, fmt.Errorf("%s %s: %w", name, ref, err)
					}
					out = append(out, b)
				}
			}
		}
	}

	for _, w := range p.FullBurst {
		b := buffs.Buff{FullBurst: 1}
		applyWindow(&b, w, 0)
		out = append(out, b)
	}

	for _, eff := range p.Custom {
		b := eff.Buff()
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("custom effect: %w", err)
		}
		out = append(out, b)
	}

	return out, nil
}

func resolveSkill(ch config.Character, ref string) (config.Skill, int, error) {
	name := ref
	depth := 0
	if i := strings.IndexByte(ref, '_'); i >= 0 {
		name = ref[:i]
		d, err := strconv.Atoi(ref[i+1:])
		if err != nil || d < 1 {
			return config.Skill{}, 0, fmt.Errorf("%q is not a valid skill reference", ref)
		}
		depth = d
	}
	switch name {
	case "s1":
		return ch.Skill1, depth, nil
	case "s2":
		return ch.Skill2, depth, nil
	case "b":
		return ch.Burst, depth, nil
	}
	return config.Skill{}, 0, fmt.Errorf("%q is not a valid skill reference", ref)
}

// applyWindow stamps the window's interval onto the buff. The window's
// duration wins over the effect's own; with neither the buff collapses to a
// zero-width no-op.
func applyWindow(b *buffs.Buff, w Window, effectDuration float64) {
	b.Start = w.Start
	d := w.Duration
	if d == 0 {
		d = effectDuration
	}
	switch {
	case math.IsInf(d, 1):
		b.End = math.Inf(1)
	case d == 0:
		b.End = w.Start
	default:
		b.End = w.Start + d
	}
}
