package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

// Swappable for tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "finbook-cli",
		Short: "Finbook CLI tool",
		Long:  `A command line interface for interacting with the Finbook API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Finbook API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("FINBOOK_TOKEN"), "Bearer token (defaults to FINBOOK_TOKEN)")

	rootCmd.AddCommand(
		loginCmd(),
		entriesCmd(),
		summaryCmd(),
		exportCmd(),
		hashPasswordCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and print a bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiRequest(http.MethodPost, "/api/v1/auth/login", map[string]string{
				"email":    email,
				"password": password,
			})
			if err != nil {
				return err
			}

			var resp struct {
				Token string `json:"token"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			fmt.Println(resp.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}

func entriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Ledger entry operations",
	}

	cmd.AddCommand(entriesListCmd(), entriesAddCmd(), entriesDeleteCmd())
	return cmd
}

func entriesListCmd() *cobra.Command {
	var term, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/entries?q=" + term + "&category=" + category
			body, err := apiRequest(http.MethodGet, path, nil)
			if err != nil {
				return err
			}

			var resp struct {
				Entries []struct {
					ID          string `json:"id"`
					Title       string `json:"title"`
					DisplayDate string `json:"display_date"`
					Category    string `json:"category"`
					Profit      string `json:"display_profit"`
					Loss        string `json:"display_loss"`
				} `json:"entries"`
				Matched int `json:"matched"`
				Total   int `json:"total"`
			}
			if err := json.Unmarshal(body, &resp); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			for _, e := range resp.Entries {
				fmt.Printf("%-28s %-12s %-24s %-18s %12s %12s\n",
					e.ID, e.DisplayDate, truncate(e.Title, 24), truncate(e.Category, 18), e.Profit, e.Loss)
			}
			fmt.Printf("showing %d of %d entries\n", resp.Matched, resp.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&term, "search", "", "Case-insensitive title/notes filter")
	cmd.Flags().StringVar(&category, "category", "", "Category filter")

	return cmd
}

func entriesAddCmd() *cobra.Command {
	var title, date, category, notes, profit, loss string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new ledger entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiRequest(http.MethodPost, "/api/v1/entries", map[string]string{
				"title":    title,
				"date":     date,
				"category": category,
				"notes":    notes,
				"profit":   profit,
				"loss":     loss,
			})
			if err != nil {
				return err
			}

			var entry map[string]any
			if err := json.Unmarshal(body, &entry); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(entry)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Entry title")
	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&category, "category", "", "Entry category")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&profit, "profit", "", "Profit amount")
	cmd.Flags().StringVar(&loss, "loss", "", "Loss amount")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("date")

	return cmd
}

func entriesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a ledger entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := apiRequest(http.MethodDelete, "/api/v1/entries/"+args[0], nil); err != nil {
				return err
			}

			fmt.Println("deleted")
			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show aggregate totals over the full ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiRequest(http.MethodGet, "/api/v1/summary", nil)
			if err != nil {
				return err
			}

			var summary map[string]any
			if err := json.Unmarshal(body, &summary); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			printJSON(summary)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the ledger as an xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := apiRequest(http.MethodGet, "/api/v1/entries/export", nil)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, body, 0o644); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}

			fmt.Printf("wrote %d bytes to %s\n", len(body), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "expenses.xlsx", "Output file path")

	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Hash a password for seeding user accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			fmt.Println(string(hash))
			return nil
		},
	}
}

func apiRequest(method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("request failed (status %d): %s", resp.StatusCode, string(body))
	}

	return body, nil
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("failed to render response: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
