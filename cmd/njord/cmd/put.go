/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put [coords...]",
	Short: "Store one chunk from a file or stdin",
	Long: `Store one chunk at the given grid coordinates. The input must be
the chunk's raw bytes in the codec's configured byte order.

Examples:
  njord put 0 1 --file chunk.bin
  cat chunk.bin | njord put 0 1`,
	Args: cobra.MinimumNArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoordArgs(args)
		if err != nil {
			return err
		}
		file, _ := cmd.Flags().GetString("file")

		var data []byte
		if file == "" || file == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(file)
		}
		if err != nil {
			return fmt.Errorf("failed to read chunk bytes: %w", err)
		}

		p, chunkStore, err := buildPipeline(cfg)
		if err != nil {
			return err
		}
		defer chunkStore.Close()

		spec := p.Spec()
		array, err := p.Codec().DecodeSingle(spec.Prototype.NewBuffer(data), spec)
		if err != nil {
			return fmt.Errorf("chunk bytes do not match the array spec: %w", err)
		}
		if err := p.WriteChunk(cmd.Context(), coords, array); err != nil {
			return err
		}
		cmd.Printf("Stored chunk %v (%d bytes) under key %q\n",
			coords, len(data), p.Keys().EncodeChunkKey(coords))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
	putCmd.Flags().StringP("file", "f", "", "File holding the chunk bytes (default stdin)")
}

// parseCoordArgs parses positional coordinate arguments
func parseCoordArgs(args []string) ([]int, error) {
	coords := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid coordinate %q", arg)
		}
		coords[i] = n
	}
	return coords, nil
}
