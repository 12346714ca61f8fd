package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// ipipItem is one IPIP Extraversion questionnaire statement.
// Negatively keyed items are reverse-scored (6 - raw).
type ipipItem struct {
	text     string
	positive bool
}

// ipipItems are the ten public-domain IPIP Extraversion items.
var ipipItems = []ipipItem{
	{"Am the life of the party.", true},
	{"Don't talk a lot.", false},
	{"Feel comfortable around people.", true},
	{"Keep in the background.", false},
	{"Start conversations.", true},
	{"Have little to say.", false},
	{"Talk to a lot of different people at parties.", true},
	{"Don't like to draw attention to myself.", false},
	{"Don't mind being the center of attention.", true},
	{"Am quiet around strangers.", false},
}

var selfReportCmd = &cobra.Command{
	Use:   "self-report <session-id>",
	Short: "Fill in the IPIP Extraversion questionnaire and link it to a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		score, err := administer(os.Stdin, os.Stdout)
		if err != nil {
			return err
		}

		fmt.Println("\n" + strings.Repeat("=", 60))
		fmt.Printf("  Self-report score : %.2f / 5.00\n", score)
		fmt.Println(strings.Repeat("=", 60))

		c := newClient(cmd)
		if err := c.SetSelfReport(cmd.Context(), sessionID, score); err != nil {
			return fmt.Errorf("link self-report to %s: %w", sessionID, err)
		}
		fmt.Printf("Linked self-report to session %s.\n", sessionID)
		return nil
	},
}

// administer runs the questionnaire interactively and returns the
// domain score: the mean of the keyed item scores on the 1-5 scale.
func administer(in *os.File, out *os.File) (float64, error) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out, "  IPIP Extraversion Self-Report Questionnaire")
	fmt.Fprintln(out, "  Rate each statement from 1 to 5:")
	fmt.Fprintln(out, "    1 = Very Inaccurate")
	fmt.Fprintln(out, "    2 = Moderately Inaccurate")
	fmt.Fprintln(out, "    3 = Neither Accurate Nor Inaccurate")
	fmt.Fprintln(out, "    4 = Moderately Accurate")
	fmt.Fprintln(out, "    5 = Very Accurate")
	fmt.Fprintln(out, strings.Repeat("=", 60))
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(in)
	total := 0

	for i, item := range ipipItems {
		raw, err := askItem(scanner, out, i+1, item.text)
		if err != nil {
			return 0, err
		}
		if item.positive {
			total += raw
		} else {
			total += 6 - raw
		}
	}

	return float64(total) / float64(len(ipipItems)), nil
}

func askItem(scanner *bufio.Scanner, out *os.File, n int, text string) (int, error) {
	for {
		fmt.Fprintf(out, "  %d. %q  [1-5]: ", n, text)
		if !scanner.Scan() {
			return 0, fmt.Errorf("input closed before questionnaire finished")
		}
		raw, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && raw >= 1 && raw <= 5 {
			return raw, nil
		}
		fmt.Fprintln(out, "    Please enter a number between 1 and 5.")
	}
}
