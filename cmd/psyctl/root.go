package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Recognifygeneral/Psychometricist-AI/pkg/client"
)

var rootCmd = &cobra.Command{
	Use:   "psyctl",
	Short: "Terminal client for the conversational Extraversion assessment",
	Long: "psyctl drives the assessment API from the terminal: run an interview,\n" +
		"fill in the self-report questionnaire, and compare the two.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "API server URL (overrides PSYAI_SERVER, default http://localhost:8080)")
	rootCmd.PersistentFlags().String("api-key", "", "Bearer token (overrides PSYAI_API_KEY)")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(selfReportCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(versionCmd)
}

// newClient builds the API client from --server/--api-key flags,
// falling back to PSYAI_SERVER / PSYAI_API_KEY env vars.
func newClient(cmd *cobra.Command) *client.Client {
	server, _ := cmd.Flags().GetString("server")
	if server == "" {
		server = os.Getenv("PSYAI_SERVER")
	}
	if server == "" {
		server = "http://localhost:8080"
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv("PSYAI_API_KEY")
	}

	var opts []client.Option
	if apiKey != "" {
		opts = append(opts, client.WithAPIKey(apiKey))
	}
	return client.New(server, opts...)
}
