package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	itemsCmd := &cobra.Command{Use: "items", Short: "Item operations"}

	// search
	var archived bool
	var itemType, description, date, direction string
	var locations []string
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search items",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client().R().SetQueryParam("archived", fmt.Sprintf("%t", archived))
			if itemType != "" {
				req.SetQueryParam("type", itemType)
			}
			if description != "" {
				req.SetQueryParam("description", description)
			}
			if date != "" {
				req.SetQueryParam("date", date)
				req.SetQueryParam("dateDirection", direction)
			}
			for _, loc := range locations {
				req.QueryParam.Add("location", loc)
			}
			resp, err := req.Get("/api/laf/items")
			return printResponse(resp, err)
		},
	}
	searchCmd.Flags().BoolVar(&archived, "archived", false, "Search archived items")
	searchCmd.Flags().StringVar(&itemType, "type", "", "Item type name")
	searchCmd.Flags().StringVar(&description, "description", "", "Description substring")
	searchCmd.Flags().StringVar(&date, "date", "", "Date (MM/DD/YYYY or YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&direction, "direction", "Before", "Date direction (Before|After)")
	searchCmd.Flags().StringSliceVar(&locations, "location", nil, "Location (repeatable)")
	itemsCmd.AddCommand(searchCmd)

	// create
	var createType, createLocation, createDate, createDescription string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Log a found item",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().SetBody(map[string]interface{}{
				"type":        createType,
				"location":    createLocation,
				"date":        createDate,
				"description": createDescription,
			}).Post("/api/laf/item")
			return printResponse(resp, err)
		},
	}
	createCmd.Flags().StringVar(&createType, "type", "", "Item type name (required)")
	createCmd.Flags().StringVar(&createLocation, "location", "", "Location found (required)")
	createCmd.Flags().StringVar(&createDate, "date", "", "Date found (required)")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Description")
	_ = createCmd.MarkFlagRequired("type")
	_ = createCmd.MarkFlagRequired("location")
	_ = createCmd.MarkFlagRequired("date")
	itemsCmd.AddCommand(createCmd)

	// found
	var finderName, finderEmail string
	foundCmd := &cobra.Command{
		Use:   "found ITEM_ID",
		Short: "Mark an item claimed by its owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().SetBody(map[string]string{
				"name":  finderName,
				"email": finderEmail,
			}).Put("/api/laf/item/found/" + args[0])
			return printResponse(resp, err)
		},
	}
	foundCmd.Flags().StringVar(&finderName, "name", "", "Owner name (required)")
	foundCmd.Flags().StringVar(&finderEmail, "email", "", "Owner email (required)")
	_ = foundCmd.MarkFlagRequired("name")
	_ = foundCmd.MarkFlagRequired("email")
	itemsCmd.AddCommand(foundCmd)

	// archive
	var archiveIDs []int64
	archiveCmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive items in bulk",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().SetBody(map[string]interface{}{
				"ids": archiveIDs,
			}).Post("/api/laf/items/archive")
			return printResponse(resp, err)
		},
	}
	archiveCmd.Flags().Int64SliceVar(&archiveIDs, "id", nil, "Item id (repeatable)")
	_ = archiveCmd.MarkFlagRequired("id")
	itemsCmd.AddCommand(archiveCmd)

	// expired
	var expiredType string
	expiredCmd := &cobra.Command{
		Use:   "expired",
		Short: "Report expired and potentially expired items",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().
				SetQueryParam("type", expiredType).
				Get("/api/laf/expired")
			return printResponse(resp, err)
		},
	}
	expiredCmd.Flags().StringVar(&expiredType, "type", "All", "Target category or All")
	itemsCmd.AddCommand(expiredCmd)

	rootCmd.AddCommand(itemsCmd)
}
