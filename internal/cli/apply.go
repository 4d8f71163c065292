package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mstern/cubekit"
	"github.com/mstern/cubekit/internal/render"
	"github.com/mstern/cubekit/internal/storage"
)

var applyCmd = &cobra.Command{
	Use:   "apply [notation...]",
	Short: "Apply a move sequence to a solved cube",
	Long: `Apply a sequence of face turns to a solved cube and print the result.

The sequence uses standard notation, either as one quoted argument or as
separate arguments:

  cubekit apply "R U Ri Ui"
  cubekit apply R U Ri Ui

With --algo, a named algorithm from the config file is applied instead:

  cubekit apply --algo sexy`,
	RunE: runApply,
}

var (
	applyAlgo  string
	applySave  bool
	applyPlain bool
)

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVarP(&applyAlgo, "algo", "a", "", "Apply a named algorithm from the config file")
	applyCmd.Flags().BoolVar(&applySave, "save", false, "Record the moves as a session in the database")
	applyCmd.Flags().BoolVar(&applyPlain, "plain", false, "Print the net without terminal colors")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var moves []cubekit.Move
	switch {
	case applyAlgo != "":
		if len(args) > 0 {
			return fmt.Errorf("--algo cannot be combined with a notation argument")
		}
		moves, err = cfg.Algorithm(applyAlgo)
		if err != nil {
			return fmt.Errorf("%w (known: %s)", err, strings.Join(cfg.AlgorithmNames(), ", "))
		}
	case len(args) > 0:
		moves, err = cubekit.ParseSequence(strings.Join(args, " "))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("nothing to apply: give a notation sequence or --algo")
	}

	c := cubekit.New()
	c.Apply(moves...)

	r := render.New(!applyPlain)
	fmt.Println(r.Net(c))
	fmt.Printf("Applied %d moves: %s\n", len(moves), cubekit.FormatSequence(moves))
	if c.IsSolved() {
		fmt.Println("Cube is solved.")
	}

	if applySave {
		id, err := saveSession(moves, c.IsSolved())
		if err != nil {
			return err
		}
		fmt.Printf("Saved session %s\n", id)
	}

	return nil
}

// saveSession records a finished sequence as a complete session.
func saveSession(moves []cubekit.Move, solved bool) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	sessions := storage.NewSessionRepository(db)
	moveRepo := storage.NewMoveRepository(db)

	id, err := sessions.Create(cubekit.FormatSequence(moves), "")
	if err != nil {
		return "", err
	}
	if err := moveRepo.Append(id, moves); err != nil {
		return "", err
	}
	if err := sessions.End(id, solved); err != nil {
		return "", err
	}

	return id, nil
}
