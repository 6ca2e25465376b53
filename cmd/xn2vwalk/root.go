package main

import (
	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "xn2vwalk",
	Short: "Biased random-walk corpus generator for node2vec/xn2v embeddings",
	Long: `xn2vwalk loads a weighted, optionally typed graph, precomputes second-order
node2vec/xn2v transition tables, and draws biased random walks from every
node to build a training corpus for downstream embedding models.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding config.yaml")
}
