package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Recognifygeneral/Psychometricist-AI/pkg/client"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run a conversational assessment session",
	Long: "Starts an interview and loops question/answer until the session ends.\n" +
		"Type /stop to end early and score what was said so far.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient(cmd)

		turn, err := c.StartSession(ctx)
		if err != nil {
			return fmt.Errorf("start session: %w", err)
		}

		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("  Conversational Assessment")
		fmt.Printf("  Session: %s  (up to %d turns, /stop to end early)\n", turn.SessionID, turn.MaxTurns)
		fmt.Println(strings.Repeat("=", 60))

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 64*1024), 64*1024)

		for !turn.Done {
			if turn.Warning != "" {
				fmt.Fprintln(os.Stderr, "note:", turn.Warning)
			}
			fmt.Printf("\n[%d/%d] %s\n> ", turn.Turn+1, turn.MaxTurns, turn.Question)

			if !scanner.Scan() {
				fmt.Println("\nInput closed, ending session.")
				turn, err = c.StopSession(ctx, turn.SessionID)
				if err != nil {
					return fmt.Errorf("stop session: %w", err)
				}
				break
			}
			reply := strings.TrimSpace(scanner.Text())

			switch {
			case reply == "/stop":
				turn, err = c.StopSession(ctx, turn.SessionID)
				if err != nil {
					return fmt.Errorf("stop session: %w", err)
				}
			case reply == "":
				fmt.Println("(empty reply ignored)")
			default:
				turn, err = c.SendMessage(ctx, turn.SessionID, reply)
				switch {
				case errors.Is(err, client.ErrReplyTooLong):
					fmt.Println("Reply too long, please shorten it.")
					err = nil
				case err != nil:
					return fmt.Errorf("send reply: %w", err)
				}
			}
		}

		if turn.Warning != "" {
			fmt.Fprintln(os.Stderr, "note:", turn.Warning)
		}
		printAssessment(turn.SessionID, turn.Result)
		return nil
	},
}

func printAssessment(sessionID string, a *client.Assessment) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("  ASSESSMENT")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  Session        : %s\n", sessionID)

	if a == nil {
		fmt.Println("  No result available.")
		fmt.Println(strings.Repeat("=", 60))
		return
	}

	fmt.Printf("  Score          : %.2f / 5.00\n", a.Score)
	fmt.Printf("  Classification : %s Extraversion\n", a.Classification)
	fmt.Printf("  Confidence     : %.2f\n", a.Confidence)
	fmt.Printf("  Fusion         : %s over %d method(s)\n", a.FusionMethod, a.MethodsUsed)
	if a.Warning != "" {
		fmt.Printf("  Warning        : %s\n", a.Warning)
	}

	for _, m := range []*client.MethodResult{a.Rule, a.Similarity, a.Judgment} {
		if m == nil {
			continue
		}
		line := fmt.Sprintf("  - %-10s : %.2f (%s, conf %.2f)", m.Method, m.Score, m.Classification, m.Confidence)
		if m.Error != "" {
			line = fmt.Sprintf("  - %-10s : unavailable (%s)", m.Method, m.Error)
		}
		fmt.Println(line)
	}
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("\nLink a questionnaire score with: psyctl self-report %s\n", sessionID)
}
