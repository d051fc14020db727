// Command sudoku-audit validates puzzle collections and generates new ones.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"svw.info/sudoku-audit/internal/difficulty"
	"svw.info/sudoku-audit/internal/generator"
	"svw.info/sudoku-audit/internal/infrastructure/reportdb"
	"svw.info/sudoku-audit/internal/infrastructure/storage"
	"svw.info/sudoku-audit/internal/ports"
	"svw.info/sudoku-audit/internal/solver"
	"svw.info/sudoku-audit/internal/usecase"
	"svw.info/sudoku-audit/internal/validator"
)

var log = logrus.New()

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:           "sudoku-audit",
		Short:         "Validate and generate Sudoku puzzle collections",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("bad log level %q: %w", logLevel, err)
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")
	root.AddCommand(newValidateCommand(), newGenerateCommand())
	return root
}

func pickSolver(kind string) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver(), nil
	case "dlx", "":
		return solver.NewDLXSolver(), nil
	}
	return nil, fmt.Errorf("unknown solver %q (want dlx or backtrack)", kind)
}

func newValidateCommand() *cobra.Command {
	var (
		verbose    bool
		solverKind string
		workers    int
		thresholds string
		reportDB   string
	)
	cmd := &cobra.Command{
		Use:   "validate DIR",
		Short: "Validate every puzzle in a collection directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			s, err := pickSolver(solverKind)
			if err != nil {
				return err
			}
			v := validator.New(s)
			if thresholds != "" {
				tab, err := difficulty.Load(thresholds)
				if err != nil {
					return err
				}
				v.Thresholds = tab
			}
			svc := usecase.NewService(v, nil, storage.NewFS(dir), log)
			svc.Workers = workers

			sum, err := svc.ValidateCollection(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if verbose {
				for _, rep := range sum.Reports {
					status := "ok"
					if !rep.Valid {
						status = "INVALID"
					}
					fmt.Fprintf(out, "puzzle %s: %s (clues=%d symmetry=%s difficulty=%s minimal=%v sample=%d)\n",
						rep.PuzzleID, status, rep.Stats.ClueCount, rep.Stats.Symmetry,
						rep.Stats.Difficulty, rep.Stats.AppearsMinimal, rep.Stats.MinimalitySample)
					for _, e := range rep.Errors {
						fmt.Fprintf(out, "  error: %s\n", e)
					}
					for _, w := range rep.Warnings {
						fmt.Fprintf(out, "  warning: %s\n", w)
					}
				}
			}
			fmt.Fprintf(out, "%d puzzles: %d valid, %d invalid (%d errors, %d warnings)\n",
				sum.TotalPuzzles, sum.ValidPuzzles, sum.InvalidPuzzles, sum.TotalErrors, sum.TotalWarnings)

			if reportDB != "" {
				store, err := reportdb.Open(reportDB)
				if err != nil {
					return err
				}
				defer store.Close()
				runID, err := store.SaveRun(cmd.Context(), dir, sum)
				if err != nil {
					return err
				}
				log.WithFields(logrus.Fields{"run": runID, "db": reportDB}).Info("reports persisted")
			}

			if sum.InvalidPuzzles > 0 {
				return fmt.Errorf("%d of %d puzzles failed validation", sum.InvalidPuzzles, sum.TotalPuzzles)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-puzzle detail")
	cmd.Flags().StringVar(&solverKind, "solver", "dlx", "solution counter to use: dlx|backtrack")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel validation workers (0 = one per CPU)")
	cmd.Flags().StringVar(&thresholds, "thresholds", "", "YAML file overriding the difficulty threshold table")
	cmd.Flags().StringVar(&reportDB, "report-db", "", "SQLite file to persist reports into")
	return cmd
}

func newGenerateCommand() *cobra.Command {
	var (
		out   string
		count int
		clues int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a collection of unique-solution puzzles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			s := solver.NewBacktrackingSolver()
			svc := usecase.NewService(validator.New(s), generator.NewUniqueGenerator(s), storage.NewFS(out), log)

			puzzles, err := svc.GenerateCollection(cmd.Context(), count, clues, seed)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d puzzles to %s (seed %d)\n", len(puzzles), out, seed)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "./puzzles", "output collection directory")
	cmd.Flags().IntVar(&count, "count", 10, "number of puzzles to generate")
	cmd.Flags().IntVar(&clues, "clues", 30, "target clue count per puzzle")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base RNG seed (0 = time-based)")
	return cmd
}
