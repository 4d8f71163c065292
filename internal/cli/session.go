package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mstern/cubekit"
	"github.com/mstern/cubekit/internal/render"
	"github.com/mstern/cubekit/internal/storage"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect recorded sessions",
	Long:  `List, show, and replay move sessions recorded in the local database.`,
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE:  runSessionList,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session's move log",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionReplayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Replay a session's moves onto a solved cube",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionReplay,
}

var sessionDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a session and its move log",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionDelete,
}

var (
	sessionListLimit  int
	sessionReplayStep bool
)

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionReplayCmd)
	sessionCmd.AddCommand(sessionDeleteCmd)

	sessionListCmd.Flags().IntVarP(&sessionListLimit, "limit", "n", 20, "Maximum sessions to list")
	sessionReplayCmd.Flags().BoolVar(&sessionReplayStep, "net", false, "Print the net after every move, not just the final state")
}

func runSessionList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sessions, err := storage.NewSessionRepository(db).List(sessionListLimit)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet. Try: cubekit scramble --save")
		return nil
	}

	moveRepo := storage.NewMoveRepository(db)
	for _, s := range sessions {
		n, _ := moveRepo.Count(s.SessionID)
		status := "open"
		if s.EndedAt != nil {
			status = "unsolved"
			if s.Solved {
				status = "solved"
			}
		}
		fmt.Printf("%s  %s  %3d moves  %s\n",
			s.SessionID, s.StartedAt.Format(time.RFC3339), n, status)
	}

	return nil
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := storage.NewSessionRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("no session %q", args[0])
	}

	fmt.Printf("Session: %s\n", s.SessionID)
	fmt.Printf("Started: %s\n", s.StartedAt.Format(time.RFC3339))
	if s.EndedAt != nil {
		fmt.Printf("Ended:   %s\n", s.EndedAt.Format(time.RFC3339))
		fmt.Printf("Solved:  %t\n", s.Solved)
	}
	if s.Scramble != nil {
		fmt.Printf("Scramble: %s\n", *s.Scramble)
	}
	if s.Notes != nil {
		fmt.Printf("Notes: %s\n", *s.Notes)
	}

	records, err := storage.NewMoveRepository(db).GetBySession(s.SessionID)
	if err != nil {
		return err
	}

	fmt.Printf("\nMoves (%d):\n", len(records))
	for _, rec := range records {
		fmt.Printf("  %3d  %s\n", rec.Seq, rec.Notation)
	}

	return nil
}

func runSessionReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	moves, err := storage.NewMoveRepository(db).Moves(args[0])
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return fmt.Errorf("no moves recorded for session %q", args[0])
	}

	c := cubekit.New()
	r := render.New(false)

	for i, m := range moves {
		c.ApplyMove(m)
		if sessionReplayStep {
			fmt.Printf("-- %d: %s\n%s\n", i+1, m, r.Net(c))
		}
	}

	if !sessionReplayStep {
		fmt.Println(r.Net(c))
	}
	fmt.Printf("Replayed %d moves: %s\n", len(moves), cubekit.FormatSequence(moves))
	if c.IsSolved() {
		fmt.Println("Cube ends solved.")
	}

	return nil
}

func runSessionDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.NewSessionRepository(db).Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted session %s\n", args[0])
	return nil
}
