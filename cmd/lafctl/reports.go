package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	reportsCmd := &cobra.Command{Use: "reports", Short: "Lost-report operations"}

	// search
	var archived bool
	var name, email, reportType string
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search lost reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client().R().SetQueryParam("archived", fmt.Sprintf("%t", archived))
			if name != "" {
				req.SetQueryParam("name", name)
			}
			if email != "" {
				req.SetQueryParam("email", email)
			}
			if reportType != "" {
				req.SetQueryParam("type", reportType)
			}
			resp, err := req.Get("/api/laf/reports")
			return printResponse(resp, err)
		},
	}
	searchCmd.Flags().BoolVar(&archived, "archived", false, "Search archived reports")
	searchCmd.Flags().StringVar(&name, "name", "", "Owner name substring")
	searchCmd.Flags().StringVar(&email, "email", "", "Owner email substring")
	searchCmd.Flags().StringVar(&reportType, "type", "", "Item type name")
	reportsCmd.AddCommand(searchCmd)

	// new
	newCmd := &cobra.Command{
		Use:   "new",
		Short: "List unseen reports and mark them viewed",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().Get("/api/laf/reports/new")
			return printResponse(resp, err)
		},
	}
	reportsCmd.AddCommand(newCmd)

	// count
	countCmd := &cobra.Command{
		Use:   "count",
		Short: "Count unseen reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().Get("/api/laf/reports/new/count")
			return printResponse(resp, err)
		},
	}
	reportsCmd.AddCommand(countCmd)

	// found
	foundCmd := &cobra.Command{
		Use:   "found REPORT_ID",
		Short: "Close a report whose item was returned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().Put("/api/laf/report/found/" + args[0])
			return printResponse(resp, err)
		},
	}
	reportsCmd.AddCommand(foundCmd)

	// viewed
	viewedCmd := &cobra.Command{
		Use:   "viewed REPORT_ID",
		Short: "Mark a report viewed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().Put("/api/laf/report/viewed/" + args[0])
			return printResponse(resp, err)
		},
	}
	reportsCmd.AddCommand(viewedCmd)

	rootCmd.AddCommand(reportsCmd)
}
