/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get [coords...]",
	Short: "Fetch one chunk's canonical bytes",
	Long: `Fetch the chunk at the given grid coordinates and write its
canonical encoded bytes to a file or stdout.

Examples:
  njord get 0 1 --output chunk.bin
  njord get 0 1 > chunk.bin`,
	Args: cobra.MinimumNArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoordArgs(args)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")

		p, chunkStore, err := buildPipeline(cfg)
		if err != nil {
			return err
		}
		defer chunkStore.Close()

		array, err := p.ReadChunk(cmd.Context(), coords)
		if err != nil {
			return err
		}
		encoded, err := p.Codec().EncodeSingle(array, p.Spec())
		if err != nil {
			return err
		}

		if output == "" || output == "-" {
			_, err = os.Stdout.Write(encoded.Bytes())
			return err
		}
		if err := os.WriteFile(output, encoded.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write chunk bytes: %w", err)
		}
		cmd.Printf("Wrote chunk %v (%d bytes) to %s\n", coords, encoded.Len(), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringP("output", "o", "", "File to write the chunk bytes to (default stdout)")
}
