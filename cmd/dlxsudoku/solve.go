package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/dlxsudoku/internal/domain"
)

var solveCmd = &cobra.Command{
	Use:   "solve BOARD",
	Short: "Solve an 81-character board string ('0' or '.' for empty cells)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := domain.ParseGrid(args[0])
		if err != nil {
			return err
		}
		s := newSolver(cfg.Solver)
		out, st, err := s.Solve(cmd.Context(), g)
		if err != nil {
			return err
		}
		fmt.Printf("solved givens=%d nodes=%d took=%v\n",
			g.Givens(), st.Nodes, st.Duration.Round(time.Millisecond))
		fmt.Println(out)
		return nil
	},
}
