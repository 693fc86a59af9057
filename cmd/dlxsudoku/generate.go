package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"svw.info/dlxsudoku/internal/domain"
	"svw.info/dlxsudoku/internal/infrastructure/storage"
)

var (
	flagSeed       int64
	flagDifficulty string
	flagSaveDir    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a deterministic puzzle for a seed",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		diffLabel := flagDifficulty
		if !cmd.Flags().Changed("difficulty") && cfg.Generator.DefaultDifficulty != "" {
			diffLabel = cfg.Generator.DefaultDifficulty
		}
		diff := domain.ParseDifficulty(diffLabel)

		g := newGenerator(cfg.Solver)
		p, st, err := g.Generate(cmd.Context(), seed, diff)
		if err != nil {
			return err
		}
		fmt.Printf("seed=%d difficulty=%s givens=%d nodes=%d took=%v\n",
			seed, diff, p.Grid.Givens(), st.Nodes, st.Duration.Round(time.Millisecond))
		fmt.Println(p.Grid)

		if flagSaveDir != "" {
			p.ID = uuid.NewString()
			if err := storage.NewFS(flagSaveDir).Save(cmd.Context(), p); err != nil {
				return fmt.Errorf("saving puzzle: %w", err)
			}
			fmt.Printf("saved as %s\n", p.ID)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "generator seed (0 = current time)")
	generateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "easy|medium|hard|expert")
	generateCmd.Flags().StringVar(&flagSaveDir, "save", "", "persist the puzzle under this directory")
}
