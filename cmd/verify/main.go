package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	root := &cobra.Command{
		Use:           "verify",
		Short:         "Run end-to-end checks against a running API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&baseURL, "base-url", "http://localhost:8080", "API base URL")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "per request timeout")

	client := func() *apiClient { return newAPIClient(baseURL, timeout) }

	root.AddCommand(&cobra.Command{
		Use:   "attendance",
		Short: "Check that totalPresentDays follows present/absent changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := newReport(cmd.OutOrStdout())
			if err := verifyAttendance(client(), r); err != nil {
				return err
			}
			return r.Err()
		},
	})

	var phone string
	duplicate := &cobra.Command{
		Use:   "duplicate",
		Short: "Check that a second labourer with the same contact number is rejected",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if phone == "" {
				phone = randomPhone()
			}
			r := newReport(cmd.OutOrStdout())
			if err := verifyDuplicate(client(), r, phone); err != nil {
				return err
			}
			return r.Err()
		},
	}
	duplicate.Flags().StringVar(&phone, "phone", "", "10-digit contact number to use (random when empty)")
	root.AddCommand(duplicate)

	return root
}
