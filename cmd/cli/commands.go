package main

import (
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the registered users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/users")
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List the registered fields",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/fields")
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List all matches with field, coach and squad details",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/matches")
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [shortCode]",
	Short: "Find a match by its short code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/matches/search/" + args[0])
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the player standings sorted by points",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/api/leaderboard")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
