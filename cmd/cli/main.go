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

// bcryptGenerate is swappable in tests.
var bcryptGenerate = bcrypt.GenerateFromPassword

func main() {
	rootCmd := &cobra.Command{
		Use:   "clubledger-cli",
		Short: "ClubLedger CLI tool",
		Long:  `A command line interface for interacting with the ClubLedger API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ClubLedger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for authenticated requests")

	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(ledgerCmd())
	rootCmd.AddCommand(entriesCmd())
	rootCmd.AddCommand(memberCmd())
	rootCmd.AddCommand(hashPasswordCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var name, openingBalance string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts/", map[string]any{
				"name":            name,
				"opening_balance": openingBalance,
			})
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Account name")
	createCmd.Flags().StringVar(&openingBalance, "opening-balance", "0", "Opening balance")
	_ = createCmd.MarkFlagRequired("name")

	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get an account by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/accounts/"+args[0], nil)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/accounts/", nil)
		},
	}

	cmd.AddCommand(createCmd, getCmd, listCmd)
	return cmd
}

func ledgerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	var amount, description, category, toAccount string

	creditCmd := &cobra.Command{
		Use:   "credit [account-id]",
		Short: "Credit an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts/"+args[0]+"/credit", map[string]any{
				"amount":      amount,
				"description": description,
				"category":    category,
			})
		},
	}

	debitCmd := &cobra.Command{
		Use:   "debit [account-id]",
		Short: "Debit an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts/"+args[0]+"/debit", map[string]any{
				"amount":      amount,
				"description": description,
				"category":    category,
			})
		},
	}

	transferCmd := &cobra.Command{
		Use:   "transfer [from-account-id]",
		Short: "Transfer between accounts",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/accounts/"+args[0]+"/transfer", map[string]any{
				"to_account_id": toAccount,
				"amount":        amount,
				"description":   description,
				"category":      category,
			})
		},
	}
	transferCmd.Flags().StringVar(&toAccount, "to", "", "Destination account ID")
	_ = transferCmd.MarkFlagRequired("to")

	for _, c := range []*cobra.Command{creditCmd, debitCmd, transferCmd} {
		c.Flags().StringVar(&amount, "amount", "", "Amount")
		c.Flags().StringVar(&description, "description", "", "Description")
		c.Flags().StringVar(&category, "category", "", "Category")
		_ = c.MarkFlagRequired("amount")
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency [account-id]",
		Short: "Check that an account balance matches its ledger history",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency(args[0])
		},
	}

	cmd.AddCommand(creditCmd, debitCmd, transferCmd, consistencyCmd)
	return cmd
}

func entriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries",
		Short: "Ledger history operations",
	}

	listCmd := &cobra.Command{
		Use:   "list [account-id]",
		Short: "List entries for an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/accounts/"+args[0]+"/entries", nil)
		},
	}

	getCmd := &cobra.Command{
		Use:   "get [correlation-id]",
		Short: "Get entries by correlation ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/entries/"+args[0], nil)
		},
	}

	cmd.AddCommand(listCmd, getCmd)
	return cmd
}

func memberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Member registry operations",
	}

	var name, email, role string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a member",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodPost, "/api/v1/members/", map[string]any{
				"name":  name,
				"email": email,
				"role":  role,
			})
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Member name")
	createCmd.Flags().StringVar(&email, "email", "", "Member email")
	createCmd.Flags().StringVar(&role, "role", "player", "Member role (player, staff, coach)")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("email")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Run: func(cmd *cobra.Command, args []string) {
			doRequest(http.MethodGet, "/api/v1/members/", nil)
		},
	}

	cmd.AddCommand(createCmd, listCmd)
	return cmd
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Hash a password for user provisioning",
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

func checkConsistency(accountID string) {
	body, status := request(http.MethodGet, "/api/v1/accounts/"+accountID+"/consistency", nil)

	if status != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", status, truncate(string(body), 500))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if consistent, ok := result["consistent"].(bool); ok && consistent {
		fmt.Printf("Consistency check PASSED\n")
	} else {
		fmt.Printf("Consistency check FAILED: balance does not match history\n")
	}
}

func doRequest(method, path string, payload any) {
	body, status := request(method, path, payload)

	if status >= http.StatusBadRequest {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Println(string(body))
		return
	}
	printJSON(result)
}

func request(method, path string, payload any) ([]byte, int) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Failed to encode request: %v\n", err)
			os.Exit(1)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		fmt.Printf("Failed to build request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
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
