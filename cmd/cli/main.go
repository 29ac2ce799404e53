package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvduarte/contaledger/internal/goals"
	"github.com/mvduarte/contaledger/internal/infrastructure/config"
	"github.com/mvduarte/contaledger/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "contaledger-cli",
		Short: "ContaLedger CLI tool",
		Long:  `A command line interface for the ContaLedger API and its maintenance tasks.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ContaLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(newBalanceCmd())
	rootCmd.AddCommand(newGoalsCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account's current balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showBalance(cmd.OutOrStdout(), args[0])
		},
	}
}

func showBalance(out io.Writer, accountID string) error {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(baseURL + "/api/v1/accounts/" + accountID + "/balance")
	if err != nil {
		return fmt.Errorf("request balance: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("balance query failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccountNumber int64  `json:"account_number"`
		HolderName    string `json:"holder_name"`
		Balance       string `json:"balance"`
		CheckedAt     string `json:"checked_at"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}

	fmt.Fprintf(out, "Account %d (%s)\n", result.AccountNumber, result.HolderName)
	fmt.Fprintf(out, "Balance: %s\n", result.Balance)
	fmt.Fprintf(out, "Checked at: %s\n", result.CheckedAt)

	return nil
}

func newGoalsCmd() *cobra.Command {
	var (
		team string
		year int
	)

	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Sum a team's scored goals for a season",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := goals.NewClient()

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			total, err := client.TotalScoredGoals(ctx, team, year)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatGoals(team, year, total))

			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team name")
	cmd.Flags().IntVar(&year, "year", 0, "Season year")
	cmd.MarkFlagRequired("team")
	cmd.MarkFlagRequired("year")

	return cmd
}

// formatGoals renders the goals summary line.
func formatGoals(team string, year, total int) string {
	return "Team " + team + " scored " + strconv.Itoa(total) + " goals in " + strconv.Itoa(year)
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [up|down]",
		Short: "Apply or roll back database migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			switch args[0] {
			case "up":
				return postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
			case "down":
				return postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath)
			default:
				return fmt.Errorf("unknown direction %q, want up or down", args[0])
			}
		},
	}

	return cmd
}
