package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/mstern/cubekit"
	"github.com/mstern/cubekit/internal/render"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate and apply a random scramble",
	Long: `Generate a random scramble, apply it to a solved cube, and print both
the scramble notation and the resulting cube. The scramble never turns
the same face twice in a row.

Pass --seed to get a reproducible scramble.`,
	RunE: runScramble,
}

var (
	scrambleMoves int
	scrambleSeed  int64
	scramblePlain bool
	scrambleSave  bool
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", 0, "Number of moves (default: config scramble_length)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scramblePlain, "plain", false, "Print the net without terminal colors")
	scrambleCmd.Flags().BoolVar(&scrambleSave, "save", false, "Record the scramble as a session in the database")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	n := scrambleMoves
	if n <= 0 {
		n = cfg.ScrambleLength
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	moves := cubekit.Scramble(n, rand.New(rand.NewSource(seed)))

	c := cubekit.New()
	c.Apply(moves...)

	r := render.New(!scramblePlain)
	fmt.Println(r.Net(c))
	fmt.Printf("Scramble (%d moves): %s\n", len(moves), cubekit.FormatSequence(moves))
	fmt.Printf("Solution: %s\n", cubekit.FormatSequence(cubekit.InverseSequence(moves)))

	if scrambleSave {
		id, err := saveSession(moves, c.IsSolved())
		if err != nil {
			return err
		}
		fmt.Printf("Saved session %s\n", id)
	}

	return nil
}
