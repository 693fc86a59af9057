package main

import (
	"strings"

	"github.com/spf13/cobra"

	"svw.info/dlxsudoku/internal/config"
	"svw.info/dlxsudoku/internal/generator"
	"svw.info/dlxsudoku/internal/logger"
	"svw.info/dlxsudoku/internal/ports"
	"svw.info/dlxsudoku/internal/solver"
)

var (
	flagConfig   string
	flagLogLevel string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dlxsudoku",
	Short: "Sudoku generation and solving via Dancing Links exact cover",
	Long: `dlxsudoku generates and solves 9x9 Sudoku boards with Knuth's
Algorithm X over a dancing-links constraint matrix. Boards are fully
deterministic per seed.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = flagLogLevel
		}
		logger.SetLevel(cfg.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "debug|info|warn|error")
	rootCmd.AddCommand(serveCmd, generateCmd, solveCmd)
}

// newSolver picks the engine by name, DLX unless backtracking is asked for.
func newSolver(kind string) ports.Solver {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver()
	default:
		s := solver.NewDLXSolver()
		s.MaxNodes = cfg.Generator.MaxNodes
		return s
	}
}

func newGenerator(kind string) ports.Generator {
	return generator.New(newSolver(kind))
}
