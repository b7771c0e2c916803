package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show the ranked league standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/standings")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert any missing default roster players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performPostRequest("/seed", "")
	},
}

var recordCmd = &cobra.Command{
	Use:   "record <player-id> <wins> <losses>",
	Short: "Record a win/loss result for a player",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		wins, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid wins value %q: %w", args[1], err)
		}
		losses, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid losses value %q: %w", args[2], err)
		}
		payload := fmt.Sprintf(`{"id":%q,"wins":%d,"losses":%d}`, args[0], wins, losses)
		return performPostRequest("/players/update-stats", payload)
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
	req, err := http.NewRequest("GET", host+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return performRequest(req)
}

func performPostRequest(endpoint, payload string) error {
	req, err := http.NewRequest("POST", host+endpoint, strings.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return performRequest(req)
}

func performRequest(req *http.Request) error {
	if email != "" {
		req.Header.Set("X-Forwarded-Email", email)
	}
	fmt.Printf("Making request to %s\n", req.URL.String())

	resp, err := http.DefaultClient.Do(req)
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
