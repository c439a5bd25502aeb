/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/njord/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chunk HTTP API server",
	Long: `Start the NjordDB chunk API server.

Chunks are read and written as raw bytes addressed by grid coordinates:

  PUT  /api/v1/chunks/{coords}   store a chunk ("0,1" for chunk (0,1))
  GET  /api/v1/chunks/{coords}   fetch a chunk's canonical bytes
  GET  /api/v1/chunks            list stored chunk coordinates

Examples:
  njord serve --api-key=mysecretkey --port=9400
  njord serve --api-key=mysecretkey --data-dir=./data --store=pebble`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		apiKey, _ := cmd.Flags().GetString("api-key")

		if port != 0 {
			cfg.Port = port
		}
		if apiKey != "" {
			cfg.APIKey = apiKey
		}
		if cfg.APIKey == "" {
			cmd.Println("Error: --api-key is required")
			return nil
		}

		p, chunkStore, err := buildPipeline(cfg)
		if err != nil {
			return err
		}
		defer chunkStore.Close()

		return api.StartServer(p, api.ServerConfig{
			Bind:   cfg.Bind,
			Port:   cfg.Port,
			APIKey: cfg.APIKey,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	serveCmd.Flags().String("api-key", "", "API key for authentication (required)")
}
