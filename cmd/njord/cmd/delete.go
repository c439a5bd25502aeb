/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [coords...]",
	Short: "Remove one chunk",
	Long: `Remove the chunk at the given grid coordinates.

Examples:
  njord delete 0 1`,
	Args: cobra.MinimumNArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoordArgs(args)
		if err != nil {
			return err
		}

		p, chunkStore, err := buildPipeline(cfg)
		if err != nil {
			return err
		}
		defer chunkStore.Close()

		if err := p.DeleteChunk(cmd.Context(), coords); err != nil {
			return err
		}
		cmd.Printf("Deleted chunk %v\n", coords)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
