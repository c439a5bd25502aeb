/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// keyCmd groups chunk key utilities
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Chunk key utilities",
}

// keyEncodeCmd maps coordinates to a storage key
var keyEncodeCmd = &cobra.Command{
	Use:   "encode [coords...]",
	Short: "Encode grid coordinates as a storage key",
	Long: `Encode grid coordinates using the configured chunk key encoding.

Examples:
  njord key encode 0 1 2
  njord key encode`,
	Args: cobra.MinimumNArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoordArgs(args)
		if err != nil {
			return err
		}
		keys, err := keyEncoding(cfg)
		if err != nil {
			return err
		}
		cmd.Println(keys.EncodeChunkKey(coords))
		return nil
	},
}

// keyDecodeCmd maps a storage key back to coordinates
var keyDecodeCmd = &cobra.Command{
	Use:   "decode [key]",
	Short: "Decode a storage key into grid coordinates",
	Long: `Decode a storage key using the configured chunk key encoding.

Examples:
  njord key decode c/0/1
  njord key decode 0.1.2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := keyEncoding(cfg)
		if err != nil {
			return err
		}
		coords, err := keys.DecodeChunkKey(args[0])
		if err != nil {
			return err
		}
		cmd.Println(coords)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keyEncodeCmd)
	keyCmd.AddCommand(keyDecodeCmd)
}
