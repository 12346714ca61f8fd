package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <session-id>",
	Short: "Show the record of a finished interview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(cmd)

		report, err := c.GetReport(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("fetch report: %w", err)
		}

		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("  Session   : %s\n", report.SessionID)
		fmt.Printf("  Started   : %s\n", report.StartedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Completed : %s\n", report.CompletedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("  Turns     : %d\n", report.TotalTurns)
		if report.SelfReportScore != nil {
			fmt.Printf("  Self-report score : %.2f\n", *report.SelfReportScore)
		}
		fmt.Println(strings.Repeat("=", 60))

		for _, t := range report.Turns {
			fmt.Printf("\n[Turn %d] Q: %s\n", t.TurnNumber, t.Question)
			fmt.Printf("         A: %s\n", t.Reply)
		}

		printAssessment(report.SessionID, report.Scoring)
		return nil
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List finished interview sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClient(cmd)

		list, err := c.ListSessions(cmd.Context())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		if list.Total == 0 {
			fmt.Println("No finished sessions.")
			return nil
		}
		for _, id := range list.Items {
			fmt.Println(id)
		}
		return nil
	},
}
