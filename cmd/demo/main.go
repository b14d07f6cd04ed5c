package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ChuLiYu/shift-roster/internal/assignment"
	"github.com/ChuLiYu/shift-roster/pkg/types"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Roster struct {
		ContinueOnFull bool `yaml:"continue_on_full"`
	} `yaml:"roster"`
}

// demoPlan is the canned three-shift scenario: ten workers, three
// supervisors, and a handful of deliberately invalid fields to show the
// silent correction policy at work.
func demoPlan() assignment.Plan {
	return assignment.Plan{
		Supervisors: []assignment.SupervisorSpec{
			{Name: "Zach Mccall", ID: 2566, Salary: 68590, Shift: types.ShiftNight, Capacity: 3},
			{Name: "Helena Navarro", ID: 6456, Salary: 71690, Shift: types.ShiftDay, Capacity: 5},
			{Name: "Angela Pittman", ID: 7566, Salary: 51680, Shift: types.ShiftSwing, Capacity: 5},
		},
		Workers: []assignment.WorkerSpec{
			{Name: "Marco Joseph", ID: 1340, Shift: types.ShiftNight, Rate: 20, Hours: 10},
			{Name: "Roselle Lambert", ID: 6456, Shift: types.ShiftNight, Rate: 13, Hours: 35},
			{Name: "Helen Arbeny", ID: 7566, Shift: types.ShiftNight, Rate: 11, Hours: 22},
			{Name: "Vickie Mclaughlin", ID: 5854, Shift: types.ShiftDay, Rate: 20, Hours: 25},
			{Name: "Maryrose Hoffman", ID: 2131, Shift: types.ShiftDay, Rate: 30, Hours: 10},
			{Name: "Gertrude Glass", ID: 1000, Shift: types.ShiftDay, Rate: 18, Hours: 23},
			{Name: "Ines Huynh", ID: 5456, Shift: types.ShiftDay, Rate: 40, Hours: 28},
			{Name: "Sharyl Nielsen", ID: 1915, Shift: types.ShiftDay, Rate: 21, Hours: 33},
			{Name: "Chantel Cantrell", ID: 2638, Shift: types.ShiftSwing, Rate: 15, Hours: 6},
			{Name: "Andy Farrell", ID: 3416, Shift: types.ShiftSwing, Rate: 15, Hours: 5},
		},
	}
}

func main() {
	cfg, err := loadConfig("configs/default.yaml")
	if err != nil {
		// the demo runs fine on built-in defaults
		cfg = &Config{}
	}

	plan := demoPlan()
	fmt.Printf("✓ Plan loaded: %d supervisors, %d workers\n", len(plan.Supervisors), len(plan.Workers))
	fmt.Println("⚡ Offering every worker to every supervisor...")

	engine := assignment.New(assignment.Config{
		ContinueOnFull: cfg.Roster.ContinueOnFull,
	})

	result, err := engine.Run(context.Background(), plan)
	if err != nil {
		log.Fatalf("Failed to run assignment: %v", err)
	}

	for _, report := range result.Reports {
		fmt.Println("\n───────────────────────────────────────────────────────────")
		fmt.Println(report)
	}

	fmt.Printf("\n📊 Summary:\n")
	fmt.Printf("  Assigned:    %d\n", result.Assigned)
	fmt.Printf("  Mismatched:  %d\n", result.Mismatched)
	fmt.Printf("  Rejected:    %d\n", result.Rejected)
	fmt.Printf("  Corrections: %d\n", result.Corrections)
	fmt.Printf("  Bonuses:     %d\n", result.Bonuses)

	if result.Corrections > 0 {
		fmt.Printf("\n💡 %d invalid fields were silently replaced by defaults.\n", result.Corrections)
		fmt.Println("   Constructors never reject input: read the stored values back")
		fmt.Println("   (or check the warning logs above) to see what changed.")
	}
	if result.Bonuses > 0 {
		fmt.Printf("💰 %d supervisor(s) earned the $10000 bonus for running more than 4 workers.\n", result.Bonuses)
	}
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
