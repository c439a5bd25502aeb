/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/njord/pkg/buffer"
	"github.com/ssargent/njord/pkg/chunkkey"
	"github.com/ssargent/njord/pkg/codec"
	"github.com/ssargent/njord/pkg/config"
	"github.com/ssargent/njord/pkg/dtype"
	"github.com/ssargent/njord/pkg/metadata"
	"github.com/ssargent/njord/pkg/pipeline"
	"github.com/ssargent/njord/pkg/store"
)

// cfg is loaded once by the root command and shared by subcommands
var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "njord",
	Short: "NjordDB - Chunked N-dimensional Array Store",
	Long: `NjordDB stores N-dimensional array data as independently addressed
chunks, converted to canonical bytes by a byte-order-aware codec and mapped
to storage keys by a configurable chunk key encoding.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath != "" && config.ConfigExists(configPath) {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		} else {
			cfg = config.DefaultConfig()
		}
		if dataDir, _ := cmd.Flags().GetString("data-dir"); dataDir != "" {
			cfg.DataDir = dataDir
		}
		if backend, _ := cmd.Flags().GetString("store"); backend != "" {
			cfg.Store.Backend = backend
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringP("data-dir", "d", "", "Data directory for the store")
	rootCmd.PersistentFlags().String("store", "", "Store backend: memory, fs or pebble")
}

// openStore builds the configured chunk store backend
func openStore(cfg *config.Config) (store.ChunkStore, error) {
	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "fs":
		return store.NewFSStore(cfg.DataDir)
	case "pebble":
		return store.NewPebbleStore(cfg.DataDir)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// keyEncoding builds the configured chunk key encoding
func keyEncoding(cfg *config.Config) (chunkkey.ChunkKeyEncoding, error) {
	named := metadata.NamedConfiguration{Name: cfg.Array.KeyEncoding}
	if cfg.Array.Separator != "" {
		named.Configuration = map[string]any{"separator": cfg.Array.Separator}
	}
	return chunkkey.FromDict(named)
}

// buildPipeline wires codec, key encoding and store from the configuration.
// The caller owns the returned store and must close it.
func buildPipeline(cfg *config.Config) (*pipeline.Pipeline, store.ChunkStore, error) {
	dt, err := dtype.Parse(cfg.Array.DataType)
	if err != nil {
		return nil, nil, err
	}
	endian, err := dtype.ParseEndian(cfg.Array.Endian)
	if err != nil {
		return nil, nil, err
	}
	bytesCodec, err := codec.NewBytesCodecWithEndian(endian)
	if err != nil {
		return nil, nil, err
	}
	keys, err := keyEncoding(cfg)
	if err != nil {
		return nil, nil, err
	}
	spec, err := buffer.NewArraySpec(cfg.Array.ChunkShape, dt, nil)
	if err != nil {
		return nil, nil, err
	}
	chunkStore, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	p, err := pipeline.New(pipeline.Config{
		Codec: bytesCodec,
		Keys:  keys,
		Store: chunkStore,
		Spec:  spec,
	})
	if err != nil {
		chunkStore.Close()
		return nil, nil, err
	}
	return p, chunkStore, nil
}
