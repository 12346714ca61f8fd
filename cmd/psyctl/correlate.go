package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Compare ensemble scores against self-report questionnaire scores",
	Long: "Fetches every finished session that carries both an ensemble score and a\n" +
		"linked self-report score, then reports the agreement between the two.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		c := newClient(cmd)

		list, err := c.ListSessions(ctx)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}

		var selfScores, aiScores []float64
		var ids []string
		for _, id := range list.Items {
			report, err := c.GetReport(ctx, id)
			if err != nil {
				fmt.Printf("skip %s: %v\n", id, err)
				continue
			}
			if report.Scoring == nil || report.SelfReportScore == nil {
				continue
			}
			selfScores = append(selfScores, *report.SelfReportScore)
			aiScores = append(aiScores, report.Scoring.Score)
			ids = append(ids, id)
		}

		if len(ids) < 2 {
			return fmt.Errorf("need at least 2 sessions with paired scores, found %d", len(ids))
		}

		pearson, err := stats.Pearson(selfScores, aiScores)
		if err != nil {
			return fmt.Errorf("pearson: %w", err)
		}

		var absErr float64
		agree := 0
		for i := range selfScores {
			absErr += math.Abs(selfScores[i] - aiScores[i])
			if classify(selfScores[i]) == classify(aiScores[i]) {
				agree++
			}
		}
		mae := absErr / float64(len(selfScores))
		agreement := float64(agree) / float64(len(selfScores))

		selfMean, _ := stats.Mean(selfScores)
		aiMean, _ := stats.Mean(aiScores)

		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("  CORRELATION — Self-Report vs. Ensemble")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Printf("  N = %d\n", len(ids))
		fmt.Printf("  Pearson r        = %+.4f\n", pearson)
		fmt.Printf("  MAE              = %.4f\n", mae)
		fmt.Printf("  Class. agreement = %.1f%%\n", agreement*100)
		fmt.Printf("  Self-report mean = %.2f\n", selfMean)
		fmt.Printf("  Ensemble mean    = %.2f\n", aiMean)
		fmt.Printf("  -> %s\n", interpretR(pearson))
		fmt.Println(strings.Repeat("=", 60))
		return nil
	},
}

// classify mirrors the server's default thresholds for the agreement metric.
func classify(score float64) string {
	switch {
	case score <= 2.3:
		return "Low"
	case score <= 3.6:
		return "Medium"
	default:
		return "High"
	}
}

func interpretR(r float64) string {
	switch a := math.Abs(r); {
	case a >= 0.7:
		return "Strong convergent validity"
	case a >= 0.5:
		return "Moderate convergent validity"
	case a >= 0.3:
		return "Weak convergent validity"
	default:
		return "Poor convergent validity"
	}
}
