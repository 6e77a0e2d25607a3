package main

import (
	"github.com/spf13/cobra"
)

func init() {
	typesCmd := &cobra.Command{Use: "types", Short: "Item type administration"}

	listTypesCmd := &cobra.Command{
		Use:   "list",
		Short: "List visible types",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().Get("/api/laf/types")
			return printResponse(resp, err)
		},
	}
	typesCmd.AddCommand(listTypesCmd)

	var letter string
	var hidden bool
	addTypeCmd := &cobra.Command{
		Use:   "add TYPE_NAME",
		Short: "Add an item type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().SetBody(map[string]interface{}{
				"type":   args[0],
				"letter": letter,
				"view":   !hidden,
			}).Post("/api/laf/type")
			return printResponse(resp, err)
		},
	}
	addTypeCmd.Flags().StringVar(&letter, "letter", "", "Display-id letter prefix (required)")
	addTypeCmd.Flags().BoolVar(&hidden, "hidden", false, "Hide the type from public forms")
	_ = addTypeCmd.MarkFlagRequired("letter")
	typesCmd.AddCommand(addTypeCmd)

	deleteTypeCmd := &cobra.Command{
		Use:   "delete TYPE_NAME",
		Short: "Delete an item type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().SetBody(map[string]string{
				"type": args[0],
			}).Delete("/api/laf/type")
			return printResponse(resp, err)
		},
	}
	typesCmd.AddCommand(deleteTypeCmd)

	rootCmd.AddCommand(typesCmd)

	locationsCmd := &cobra.Command{Use: "locations", Short: "Location administration"}

	listLocationsCmd := &cobra.Command{
		Use:   "list",
		Short: "List locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().Get("/api/laf/locations")
			return printResponse(resp, err)
		},
	}
	locationsCmd.AddCommand(listLocationsCmd)

	addLocationCmd := &cobra.Command{
		Use:   "add LOCATION_NAME",
		Short: "Add a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().SetBody(map[string]string{
				"location": args[0],
			}).Post("/api/laf/location")
			return printResponse(resp, err)
		},
	}
	locationsCmd.AddCommand(addLocationCmd)

	deleteLocationCmd := &cobra.Command{
		Use:   "delete LOCATION_NAME",
		Short: "Delete a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client().R().SetBody(map[string]string{
				"location": args[0],
			}).Delete("/api/laf/location")
			return printResponse(resp, err)
		},
	}
	locationsCmd.AddCommand(deleteLocationCmd)

	rootCmd.AddCommand(locationsCmd)
}
