// Command timetablectl runs a solve against a JSON instance file from the
// terminal. Flag registration follows russross-schedule/cli.go's pattern:
// package-level vars bound directly to cobra flags.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"timetable-scheduler/internal/applog"
	"timetable-scheduler/internal/config"
	"timetable-scheduler/internal/export"
	"timetable-scheduler/internal/fixtures"
	"timetable-scheduler/internal/ingest"
	"timetable-scheduler/internal/timetable"
)

var (
	inputPath         = ""
	outputPath        = ""
	mode              = "greedy"
	deadlineSeconds   = 5.0
	demoOutputPath    = ""
	professorsCSVPath = ""
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}
	applog.Init(cfg.Log)

	cmdRoot := &cobra.Command{
		Use:   "timetablectl",
		Short: "University timetable solver",
		Long:  "A constraint-satisfaction scheduler for weekly course timetables.",
	}

	cmdSolve := &cobra.Command{
		Use:   "solve",
		Short: "solve a timetable instance and print the assignments",
		RunE:  runSolve,
	}
	cmdSolve.Flags().StringVarP(&inputPath, "input", "i", inputPath, "path to a JSON instance document")
	cmdSolve.Flags().StringVarP(&outputPath, "output", "o", outputPath, "path to write the JSON result (stdout if empty)")
	cmdSolve.Flags().StringVarP(&mode, "mode", "m", mode, "solve mode: greedy or backtracking")
	cmdSolve.Flags().Float64VarP(&deadlineSeconds, "deadline", "d", deadlineSeconds, "wall-clock deadline in seconds, 0 disables it")
	cmdSolve.Flags().StringVar(&professorsCSVPath, "professors-csv", professorsCSVPath, "optional CSV file of additional professors to merge into the instance")
	cmdSolve.MarkFlagRequired("input")
	cmdRoot.AddCommand(cmdSolve)

	cmdDemo := &cobra.Command{
		Use:   "demo",
		Short: "solve a small built-in UDP-style instance and print the result",
		RunE:  runDemo,
	}
	cmdDemo.Flags().StringVarP(&demoOutputPath, "output", "o", demoOutputPath, "path to write the JSON result (stdout if empty)")
	cmdDemo.Flags().StringVarP(&mode, "mode", "m", mode, "solve mode: greedy or backtracking")
	cmdDemo.Flags().Float64VarP(&deadlineSeconds, "deadline", "d", deadlineSeconds, "wall-clock deadline in seconds, 0 disables it")
	cmdRoot.AddCommand(cmdDemo)

	if err := cmdRoot.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, err := ingest.LoadJSONFile(inputPath)
	if err != nil {
		return err
	}

	if professorsCSVPath != "" {
		extra, err := ingest.LoadProfessorsCSV(professorsCSVPath)
		if err != nil {
			return err
		}
		for _, p := range extra {
			b.AddProfessor(p.ID, p.Name, p.AvailableSlotIDs, p.TeachableCourseCodes)
		}
	}

	solveMode := timetable.ModeGreedy
	if mode == "backtracking" {
		solveMode = timetable.ModeBacktracking
	}

	log.Info().Str("mode", mode).Str("input", inputPath).Msg("starting solve")
	start := time.Now()
	solved, err := b.Solve(solveMode, deadlineSeconds)
	duration := time.Since(start)
	stats := b.Stats()
	log.Info().
		Bool("solved", solved).
		Int("sessions_generated", stats.SessionsGenerated).
		Int("sessions_assigned", stats.SessionsAssigned).
		Dur("duration", duration).
		Msg("solve completed")
	if err != nil {
		return err
	}

	doc := export.Build(b, time.Now())

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.Write(f, doc)
	}
	return export.Write(out, doc)
}

func runDemo(cmd *cobra.Command, args []string) error {
	b := timetable.NewBuilder()
	fixtures.Seed(b)

	solveMode := timetable.ModeGreedy
	if mode == "backtracking" {
		solveMode = timetable.ModeBacktracking
	}

	log.Info().Str("mode", mode).Msg("starting solve")
	start := time.Now()
	solved, err := b.Solve(solveMode, deadlineSeconds)
	duration := time.Since(start)
	stats := b.Stats()
	log.Info().
		Bool("solved", solved).
		Int("sessions_generated", stats.SessionsGenerated).
		Int("sessions_assigned", stats.SessionsAssigned).
		Dur("duration", duration).
		Msg("solve completed")
	if err != nil {
		return err
	}

	doc := export.Build(b, time.Now())

	if demoOutputPath != "" {
		f, err := os.Create(demoOutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		return export.Write(f, doc)
	}
	return export.Write(os.Stdout, doc)
}
