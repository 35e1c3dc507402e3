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
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hamyon-cli",
		Short: "Hamyon CLI tool",
		Long:  `A command line interface for interacting with the Hamyon wallet API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Hamyon API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the current balance",
		Run: func(cmd *cobra.Command, args []string) {
			showBalance()
		},
	}

	var period string
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show income/expense totals for a period",
		Run: func(cmd *cobra.Command, args []string) {
			showSummary(period)
		},
	}
	summaryCmd.Flags().StringVar(&period, "period", "month", "Period: week, month or quarter")

	var (
		amount      string
		categoryID  int64
		description string
	)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction (negative amount for expenses)",
		Run: func(cmd *cobra.Command, args []string) {
			addTransaction(amount, categoryID, description)
		},
	}
	addCmd.Flags().StringVar(&amount, "amount", "", "Signed amount, e.g. -50000")
	addCmd.Flags().Int64Var(&categoryID, "category", 0, "Category id")
	addCmd.Flags().StringVar(&description, "description", "", "Free-text description")
	addCmd.MarkFlagRequired("amount")

	var format string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Ask the bot for a spreadsheet export",
		Run: func(cmd *cobra.Command, args []string) {
			requestExport(format)
		},
	}
	exportCmd.Flags().StringVar(&format, "format", "xlsx", "Export format: xlsx or csv")

	rootCmd.AddCommand(balanceCmd, summaryCmd, addCmd, exportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func showBalance() {
	result := getJSON("/api/v1/balance")
	fmt.Printf("Balance:   %v %v\n", result["balance"], result["currency"])
	fmt.Printf("In pocket: %v %v per day\n", result["in_pocket_per_day"], result["currency"])
}

func showSummary(period string) {
	result := getJSON("/api/v1/stats/summary?period=" + period)
	fmt.Printf("Period:    %v (since %v)\n", result["period"], result["from"])
	fmt.Printf("Income:    %v\n", result["income"])
	fmt.Printf("Expense:   %v\n", result["expense"])
	fmt.Printf("Avg daily: %v\n", result["avg_daily"])
	fmt.Printf("Entries:   %v\n", result["count"])
}

func addTransaction(amount string, categoryID int64, description string) {
	payload, _ := json.Marshal(map[string]any{
		"amount":      json.RawMessage(amount),
		"category_id": categoryID,
		"description": description,
	})

	result := postJSON("/api/v1/transactions", payload, http.StatusCreated)
	fmt.Printf("Recorded #%v: %v (%v %v)\n",
		result["id"], result["description"], result["categoryIcon"], result["categoryName"])
}

func requestExport(format string) {
	payload, _ := json.Marshal(map[string]string{"format": format})
	result := postJSON("/api/v1/export", payload, http.StatusAccepted)
	fmt.Printf("Export %v (%v), check the bot chat for the file\n", result["status"], result["format"])
}

func getJSON(path string) map[string]any {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, http.StatusOK)
}

func postJSON(path string, payload []byte, wantStatus int) map[string]any {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, wantStatus)
}

func decodeResponse(resp *http.Response, wantStatus int) map[string]any {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != wantStatus {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	return result
}
