// ============================================================================
// Shift-Roster CLI - Command Line Interface
// ============================================================================
//
// Package: internal/cli
// File: cli.go
// Purpose: Provides user-friendly command line interface based on Cobra framework
//
// Command Structure:
//   roster                         # Root command
//   ├── assign                     # Run an assignment plan
//   │   └── --file, -f            # Specify staff YAML file
//   ├── validate                   # Audit a staff file for silent corrections
//   │   └── --file, -f            # Specify staff YAML file
//   ├── status                     # View configuration and field policy
//   ├── --version                  # Display version information
//   └── --help                     # Display help information
//
// Configuration Management:
//   Uses YAML format config file (default: configs/default.yaml)
//   Configuration items include:
//   - roster: default capacity and full-roster handling
//   - metrics: Prometheus collector toggle
//   A missing default config file is not an error: the built-in defaults
//   apply. An explicitly passed config path must exist.
//
// Staff File Format:
//   supervisors:
//     - name: Zach Mccall
//       id: 2566
//       salary: 68590
//       shift: NIGHT
//       capacity: 3
//   workers:
//     - name: Marco Joseph
//       id: 1340
//       shift: NIGHT
//       rate: 20
//       hours: 10
//   assignments:            # optional; omit to offer every worker to
//     - supervisor: Zach Mccall      # every supervisor
//       workers: [Marco Joseph]
//
//   The shift field accepts a name (DAY, SWING, NIGHT, case-insensitive)
//   or a bare ordinal (1, 2, 3). Ordinals are passed through unparsed, so
//   an out-of-range ordinal is not a load error: it surfaces later as a
//   silent correction to DAY, exactly like any other invalid field.
//
// assign Command:
//   Runs a complete assignment:
//   1. Load config file
//   2. Load staff file and build the plan
//   3. Run the assignment engine
//   4. Print per-supervisor reports and a summary
//
//   Examples:
//     ./roster assign -f examples/staff.yaml
//     ./roster assign -f staff.yaml -c custom-config.yaml
//
// validate Command:
//   Audits every record in a staff file and lists the fields the
//   constructors would silently replace. Corrections are reported, not
//   errors: the command fails only when the file cannot be read or parsed.
//
//   Examples:
//     ./roster validate -f examples/staff.yaml
//
// status Command:
//   Display active configuration and the field correction policy:
//   - Config file path and roster settings
//   - Accepted range and default for every staff field
//
//   Examples:
//     ./roster status
//
// Error Handling:
//   - Config load failed: Return detailed error information
//   - Staff file invalid: Return parse error with field context
//   - Unknown names in assignments: Return resolution error
//   - Full roster: Reported by the engine; abort or continue per config
//
// ============================================================================

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ChuLiYu/shift-roster/internal/assignment"
	"github.com/ChuLiYu/shift-roster/internal/metrics"
	"github.com/ChuLiYu/shift-roster/internal/staff"
	"github.com/ChuLiYu/shift-roster/pkg/types"
)

const defaultConfigPath = "configs/default.yaml"

// Config represents the complete system configuration structure
// Maps config file fields through YAML tags
type Config struct {
	Roster struct {
		DefaultCapacity int  `yaml:"default_capacity"`
		ContinueOnFull  bool `yaml:"continue_on_full"`
	} `yaml:"roster"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"metrics"`
}

var configFile string

func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Shift-Roster: A personnel assignment system",
		Long: `Shift-Roster manages production staff with:
- Validate-or-default field policy (invalid values silently replaced)
- Shift-matched roster assignment with bounded capacity
- Supervisor bonus evaluation
- Prometheus metrics`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigPath, "config file path")

	rootCmd.AddCommand(buildAssignCommand())
	rootCmd.AddCommand(buildValidateCommand())
	rootCmd.AddCommand(buildStatusCommand())

	return rootCmd
}

func buildAssignCommand() *cobra.Command {
	var staffPath string

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Run an assignment plan from a staff YAML file",
		Long:  "Build every staff record, offer workers to supervisors, award bonuses and print the roster reports.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssignment(staffPath)
		},
	}

	cmd.Flags().StringVarP(&staffPath, "file", "f", "", "YAML file containing staff definitions")
	cmd.MarkFlagRequired("file")

	return cmd
}

func runAssignment(staffPath string) error {
	cfg, err := loadConfigOrDefault(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	file, err := loadStaffFile(staffPath)
	if err != nil {
		return fmt.Errorf("failed to load staff file: %w", err)
	}

	plan, err := buildPlan(cfg, file)
	if err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
	}

	engine := assignment.New(assignment.Config{
		ContinueOnFull: cfg.Roster.ContinueOnFull,
		Metrics:        collector,
	})

	result, err := engine.Run(context.Background(), plan)
	if err != nil {
		return fmt.Errorf("assignment failed: %w", err)
	}

	fmt.Println("\n╔═══════════════════════════════════════════════════════════╗")
	fmt.Println("║             Shift Roster Assignment                       ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Println()

	fmt.Println("📋 Plan:")
	fmt.Printf("  └─ Staff File:   %s\n", staffPath)
	fmt.Printf("  └─ Supervisors:  %d\n", len(result.Supervisors))
	fmt.Printf("  └─ Workers:      %d\n", len(result.Workers))
	fmt.Println()

	for _, report := range result.Reports {
		fmt.Println("───────────────────────────────────────────────────────────")
		fmt.Println(report)
		fmt.Println()
	}

	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("📊 Summary:")
	fmt.Printf("  ├─ ✅ Assigned:     %d\n", result.Assigned)
	fmt.Printf("  ├─ ⚠️  Mismatched:   %d\n", result.Mismatched)
	fmt.Printf("  ├─ ❌ Rejected:     %d\n", result.Rejected)
	fmt.Printf("  ├─ 🔧 Corrections:  %d\n", result.Corrections)
	fmt.Printf("  └─ 💰 Bonuses:      %d\n", result.Bonuses)
	fmt.Println()

	return nil
}

func buildValidateCommand() *cobra.Command {
	var staffPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Audit a staff file for silent field corrections",
		Long:  "List every field the constructors would replace with a default. Corrections are informational, not errors.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateStaff(staffPath)
		},
	}

	cmd.Flags().StringVarP(&staffPath, "file", "f", "", "YAML file containing staff definitions")
	cmd.MarkFlagRequired("file")

	return cmd
}

func validateStaff(staffPath string) error {
	cfg, err := loadConfigOrDefault(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	file, err := loadStaffFile(staffPath)
	if err != nil {
		return fmt.Errorf("failed to load staff file: %w", err)
	}

	plan, err := buildPlan(cfg, file)
	if err != nil {
		return fmt.Errorf("failed to build plan: %w", err)
	}

	fmt.Printf("\n🔍 Validating %s\n\n", staffPath)

	total := 0
	for _, spec := range plan.Supervisors {
		total += printCorrections("Supervisor", spec.Name, assignment.CheckSupervisor(spec))
	}
	for _, spec := range plan.Workers {
		total += printCorrections("Worker", spec.Name, assignment.CheckWorker(spec))
	}

	fmt.Println()
	if total == 0 {
		fmt.Println("✅ All fields valid, nothing will be corrected")
	} else {
		fmt.Printf("⚠️  %d field(s) will be silently replaced by defaults\n", total)
	}
	fmt.Println()

	return nil
}

// printCorrections prints one record's audit result and returns the count
func printCorrections(role, name string, corrections []assignment.Correction) int {
	label := name
	if label == "" {
		label = "(unnamed)"
	}

	if len(corrections) == 0 {
		fmt.Printf("✅ %s %s\n", role, label)
		return 0
	}

	fmt.Printf("⚠️  %s %s\n", role, label)
	for _, c := range corrections {
		fmt.Printf("  └─ %s: %q → %q\n", c.Field, c.Requested, c.Stored)
	}
	return len(corrections)
}

func buildStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show configuration and field policy",
		Long:  "Display the active configuration and the validate-or-default policy for every staff field",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStatus()
		},
	}
	return cmd
}

func showStatus() error {
	cfg, err := loadConfigOrDefault(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("\n╔═══════════════════════════════════════════════════════════╗")
	fmt.Println("║             Shift-Roster Configuration                    ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════╝")
	fmt.Println()

	fmt.Println("📋 Configuration:")
	fmt.Printf("  └─ Config File:       %s\n", configFile)
	if cfg.Roster.DefaultCapacity > 0 {
		fmt.Printf("  └─ Default Capacity:  %d\n", cfg.Roster.DefaultCapacity)
	} else {
		fmt.Printf("  └─ Default Capacity:  %d (policy default)\n", staff.DefaultCapacity)
	}
	fmt.Printf("  └─ On Full Roster:    %s\n", fullRosterMode(cfg.Roster.ContinueOnFull))
	fmt.Println()

	fmt.Println("📐 Field Policy (invalid values silently replaced):")
	fmt.Printf("  ├─ Name:     non-empty, not purely numeric (else %q)\n", staff.DefaultName)
	fmt.Printf("  ├─ ID:       %d..%d (else %d)\n", staff.MinID, staff.MaxID, staff.DefaultID)
	fmt.Printf("  ├─ Shift:    %v (else %s)\n", types.AllShifts(), staff.DefaultShift)
	fmt.Printf("  ├─ Wage:     $%d..$%d /hr (else $%d)\n", staff.MinRate, staff.MaxRate, staff.DefaultRate)
	fmt.Printf("  ├─ Hours:    %d..%d (else %d)\n", staff.MinHours, staff.MaxHours, staff.DefaultHours)
	fmt.Printf("  ├─ Salary:   $%d..$%d (else $%d)\n", staff.MinSalary, staff.MaxSalary, staff.DefaultSalary)
	fmt.Printf("  └─ Benefits: ID below %d\n", staff.BenefitsIDLimit)
	fmt.Println()

	fmt.Printf("💰 Bonus: $%d once a roster exceeds %d workers\n", staff.BonusAmount, staff.BonusWorkerThreshold)
	fmt.Println()

	fmt.Println("📡 Metrics:")
	if cfg.Metrics.Enabled {
		fmt.Println("  └─ Status: ✅ Enabled")
	} else {
		fmt.Println("  └─ Status: ⚠️  Disabled")
	}
	fmt.Println()

	fmt.Println("═══════════════════════════════════════════════════════════")
	return nil
}

func fullRosterMode(continueOnFull bool) string {
	if continueOnFull {
		return "continue (count rejections)"
	}
	return "abort"
}

// ============================================================================
// Configuration Loading
// ============================================================================

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return &cfg, nil
}

// loadConfigOrDefault loads the config file, falling back to built-in
// defaults only when the DEFAULT path is absent. An explicitly chosen
// config file must exist.
func loadConfigOrDefault(path string) (*Config, error) {
	cfg, err := loadConfig(path)
	if err != nil {
		if path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// ============================================================================
// Staff File Loading
// ============================================================================

// shiftField accepts a shift by name or by raw ordinal in YAML.
// Names are parsed strictly; ordinals pass through unparsed so that
// out-of-range values reach the constructors and show up as corrections.
type shiftField struct {
	value types.Shift
}

func (f *shiftField) UnmarshalYAML(node *yaml.Node) error {
	var ordinal int
	if err := node.Decode(&ordinal); err == nil {
		f.value = types.Shift(ordinal)
		return nil
	}

	var name string
	if err := node.Decode(&name); err != nil {
		return fmt.Errorf("shift must be a name or an ordinal: %w", err)
	}

	s, ok := types.ParseShift(name)
	if !ok {
		return fmt.Errorf("unknown shift %q (want DAY, SWING or NIGHT)", name)
	}
	f.value = s
	return nil
}

type staffFile struct {
	Supervisors []supervisorEntry `yaml:"supervisors"`
	Workers     []workerEntry     `yaml:"workers"`
	Assignments []assignmentEntry `yaml:"assignments"`
}

type supervisorEntry struct {
	Name     string     `yaml:"name"`
	ID       int        `yaml:"id"`
	Salary   int        `yaml:"salary"`
	Shift    shiftField `yaml:"shift"`
	Capacity int        `yaml:"capacity"`
}

type workerEntry struct {
	Name  string     `yaml:"name"`
	ID    int        `yaml:"id"`
	Shift shiftField `yaml:"shift"`
	Rate  int        `yaml:"rate"`
	Hours int        `yaml:"hours"`
}

type assignmentEntry struct {
	Supervisor string   `yaml:"supervisor"`
	Workers    []string `yaml:"workers"`
}

func loadStaffFile(path string) (*staffFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read staff file: %w", err)
	}

	var file staffFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse staff YAML: %w", err)
	}

	return &file, nil
}

// buildPlan converts the staff file into an assignment plan.
//
// A supervisor entry without a capacity gets the configured default
// before the record is built, so it never counts as a correction. The
// optional assignments section is resolved by name into offer lists;
// supervisors without an entry receive no offers.
func buildPlan(cfg *Config, file *staffFile) (assignment.Plan, error) {
	var plan assignment.Plan

	for _, e := range file.Supervisors {
		capacity := e.Capacity
		if capacity == 0 && cfg.Roster.DefaultCapacity > 0 {
			capacity = cfg.Roster.DefaultCapacity
		}
		plan.Supervisors = append(plan.Supervisors, assignment.SupervisorSpec{
			Name:     e.Name,
			ID:       e.ID,
			Salary:   e.Salary,
			Shift:    e.Shift.value,
			Capacity: capacity,
		})
	}

	for _, e := range file.Workers {
		plan.Workers = append(plan.Workers, assignment.WorkerSpec{
			Name:  e.Name,
			ID:    e.ID,
			Shift: e.Shift.value,
			Rate:  e.Rate,
			Hours: e.Hours,
		})
	}

	if len(file.Assignments) == 0 {
		return plan, nil
	}

	offers, err := resolveAssignments(file)
	if err != nil {
		return assignment.Plan{}, err
	}
	plan.Offers = offers

	return plan, nil
}

// resolveAssignments maps the by-name assignments section to worker indices
func resolveAssignments(file *staffFile) ([][]int, error) {
	supervisorIndex := make(map[string]int, len(file.Supervisors))
	for i, e := range file.Supervisors {
		if _, dup := supervisorIndex[e.Name]; dup {
			return nil, fmt.Errorf("duplicate supervisor name %q in assignments target", e.Name)
		}
		supervisorIndex[e.Name] = i
	}

	workerIndex := make(map[string]int, len(file.Workers))
	for i, e := range file.Workers {
		if _, dup := workerIndex[e.Name]; dup {
			return nil, fmt.Errorf("duplicate worker name %q in assignments target", e.Name)
		}
		workerIndex[e.Name] = i
	}

	offers := make([][]int, len(file.Supervisors))
	for i := range offers {
		offers[i] = []int{}
	}

	for _, a := range file.Assignments {
		si, ok := supervisorIndex[strings.TrimSpace(a.Supervisor)]
		if !ok {
			return nil, fmt.Errorf("assignments reference unknown supervisor %q", a.Supervisor)
		}
		for _, w := range a.Workers {
			wi, ok := workerIndex[strings.TrimSpace(w)]
			if !ok {
				return nil, fmt.Errorf("assignments reference unknown worker %q", w)
			}
			offers[si] = append(offers[si], wi)
		}
	}

	return offers, nil
}
