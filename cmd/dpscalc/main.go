package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"github.com/KHP-Millennium/nikke-sim-room/internal/buffs"
	"github.com/KHP-Millennium/nikke-sim-room/internal/character"
	"github.com/KHP-Millennium/nikke-sim-room/internal/config"
	"github.com/KHP-Millennium/nikke-sim-room/internal/plan"
	"github.com/KHP-Millennium/nikke-sim-room/internal/sweep"
)

// weaponProfiles weights the situational outcome labels per weapon class:
// how often sustained fire lands core hits.
var weaponProfiles = map[character.Weapon]map[string]float64{
	character.AR:  {"base": 0.833, "core": 0.167},
	character.SMG: {"base": 0.95, "core": 0.05},
	character.MG:  {"core": 1.0},
	character.SR:  {"base": 0.2, "core": 0.8},
	character.RL:  {"base": 1.0},
	character.SG:  {"base": 1.0},
}

type attacker struct {
	name    string
	windows []plan.Window
}

type evaluation struct {
	name  string
	total float64
	dps   float64
}

func main() {
	configDir := flag.String("config-dir", "./configs", "Path to config directory")
	planPath := flag.String("plan", "", "Scenario plan YAML (empty = built-in default scenario)")
	enemy := flag.String("enemy", "special_interception", "Enemy to evaluate against")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	fmt.Println("NIKKE Sim Room - DPS Window Calculator")
	fmt.Println("======================================")
	fmt.Println()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	defense, err := cfg.EnemyDefense(*enemy)
	if err != nil {
		log.Fatalf("Failed to resolve enemy: %v", err)
	}

	burstTimes := []float64{0, 15, 30}
	windowStart, windowEnd := 0.0, burstTimes[len(burstTimes)-1]

	teamPlan := defaultTeamPlan(burstTimes)
	if *planPath != "" {
		teamPlan, err = plan.Load(*planPath)
		if err != nil {
			log.Fatalf("Failed to load plan: %v", err)
		}
	}
	teamBuffs, err := plan.Build(cfg, teamPlan)
	if err != nil {
		log.Fatalf("Failed to build team buffs: %v", err)
	}

	fmt.Printf("Scenario:\n")
	fmt.Printf("  Enemy: %s (DEF %.0f)\n", *enemy, defense)
	fmt.Printf("  Window: [%.1f, %.1f] s\n", windowStart, windowEnd)
	fmt.Printf("  Team buffs: %d\n", len(teamBuffs))
	fmt.Println()

	attackers := []attacker{
		{name: "Scarlet", windows: []plan.Window{
			plan.Infinite([]string{"s1"}, 5),
			plan.Infinite([]string{"s2"}, 0),
		}},
		{name: "Modernia", windows: []plan.Window{
			plan.Infinite([]string{"s1"}, 5),
			plan.Infinite([]string{"s2"}, 0),
		}},
		{name: "Rupee", windows: []plan.Window{
			plan.Infinite([]string{"s2"}, 5),
		}},
	}

	results := make([]evaluation, len(attackers))
	var g errgroup.Group
	for i, atk := range attackers {
		i, atk := i, atk
		g.Go(func() error {
			total, err := evaluate(cfg, atk, teamBuffs, defense, burstTimes, windowStart, windowEnd)
			if err != nil {
				return fmt.Errorf("%s: %w", atk.name, err)
			}
			results[i] = evaluation{
				name:  atk.name,
				total: total,
				dps:   total / (windowEnd - windowStart),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CHARACTER\tTOTAL DAMAGE\tDPS\tRELATIVE")
	baseline := results[0].dps
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f%%\n", r.name, r.total, r.dps, r.dps/baseline*100)
	}
	w.Flush()
}

// defaultTeamPlan mirrors a standard three-burst rotation: the B1 buffer
// fires just ahead of each burst, and full burst runs ten seconds from each
// burst start.
func defaultTeamPlan(burstTimes []float64) plan.Plan {
	preBurst := make([]float64, len(burstTimes))
	for i, t := range burstTimes {
		preBurst[i] = t - 0.5
	}
	return plan.Plan{
		Characters: map[string][]plan.Window{
			"Liter": plan.Timeline([]string{"s1", "b"}, preBurst, 0),
		},
		FullBurst: plan.FullBurstUniform(burstTimes, 10),
	}
}

// evaluate computes one attacker's window-integrated damage: sustained
// normal fire weighted by the weapon's core-hit profile, plus the burst
// skill as a one-shot just before the window closes.
func evaluate(cfg *config.Config, atk attacker, teamBuffs []buffs.Buff, defense float64, burstTimes []float64, windowStart, windowEnd float64) (float64, error) {
	ch, err := cfg.Character(atk.name)
	if err != nil {
		return 0, err
	}
	stats := ch.Stats()

	selfBuffs, err := plan.Build(cfg, plan.Plan{
		Characters: map[string][]plan.Window{atk.name: atk.windows},
	})
	if err != nil {
		return 0, err
	}
	allBuffs := make([]buffs.Buff, 0, len(teamBuffs)+len(selfBuffs))
	allBuffs = append(allBuffs, teamBuffs...)
	allBuffs = append(allBuffs, selfBuffs...)

	normalDPS, err := stats.NormalDPS()
	if err != nil {
		return 0, err
	}
	profile, ok := weaponProfiles[stats.Weapon]
	if !ok {
		return 0, fmt.Errorf("no outcome profile for weapon %q", stats.Weapon)
	}

	tags := []sweep.Tag{{
		Damage:   normalDPS,
		Start:    windowStart,
		Duration: windowEnd - windowStart,
		Weights:  profile,
	}}
	if burstDamage := firstDamageEffect(ch.Burst); burstDamage > 0 {
		tags = append(tags, sweep.Tag{
			Damage:  burstDamage,
			Start:   burstTimes[len(burstTimes)-1] - 0.1,
			Weights: map[string]float64{"base": 1.0},
		})
	}

	return sweep.Total(sweep.Params{
		Tags:        tags,
		Attack:      stats.Attack,
		Defense:     defense,
		Buffs:       allBuffs,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Normalize:   true,
	})
}

func firstDamageEffect(skill config.Skill) float64 {
	for _, eff := range skill.Effects {
		if eff.Type == "damage" {
			return eff.Damage
		}
	}
	return 0
}
