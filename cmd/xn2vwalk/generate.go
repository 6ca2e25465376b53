package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/azybler/xn2vwalk/internal/config"
	"github.com/azybler/xn2vwalk/pkg/corpus"
	"github.com/azybler/xn2vwalk/pkg/loader"
	"github.com/azybler/xn2vwalk/pkg/walk"
)

var (
	genEdgesPath     string
	genNodeTypesPath string
	genOutputPath    string
	genNumWalks      int
	genWalkLength    int
	genConcurrency   int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Load a graph, preprocess transition tables, and write a walk corpus",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genEdgesPath, "edges", "", "path to the edge list file (overrides config)")
	generateCmd.Flags().StringVar(&genNodeTypesPath, "node-types", "", "path to the node-type file (optional)")
	generateCmd.Flags().StringVar(&genOutputPath, "output", "", "path to write the zstd-compressed corpus (overrides config)")
	generateCmd.Flags().IntVar(&genNumWalks, "num-walks", 0, "epochs per node (overrides config; 0 uses config)")
	generateCmd.Flags().IntVar(&genWalkLength, "walk-length", 0, "max walk length (overrides config; 0 uses config)")
	generateCmd.Flags().IntVar(&genConcurrency, "concurrency", 0, "preprocessing worker count (overrides config; 0 uses config, where 0 means runtime.NumCPU())")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	edgesPath := cfg.Graph.EdgesPath
	if genEdgesPath != "" {
		edgesPath = genEdgesPath
	}
	outputPath := cfg.Output.CorpusPath
	if genOutputPath != "" {
		outputPath = genOutputPath
	}
	numWalks := cfg.Walk.NumWalks
	if genNumWalks > 0 {
		numWalks = genNumWalks
	}
	walkLength := cfg.Walk.WalkLength
	if genWalkLength > 0 {
		walkLength = genWalkLength
	}
	concurrency := cfg.Workers.Concurrency
	if genConcurrency > 0 {
		concurrency = genConcurrency
	}

	log.Printf("Loading graph from %s...", edgesPath)
	edgesFile, err := os.Open(edgesPath)
	if err != nil {
		return err
	}
	defer edgesFile.Close()

	var nodeTypesReader io.Reader
	nodeTypesPath := cfg.Graph.NodeTypesPath
	if genNodeTypesPath != "" {
		nodeTypesPath = genNodeTypesPath
	}
	if nodeTypesPath != "" {
		nodeTypesFile, err := os.Open(nodeTypesPath)
		if err != nil {
			return err
		}
		defer nodeTypesFile.Close()
		nodeTypesReader = nodeTypesFile
	}

	g, err := loader.Load(edgesFile, cfg.LoaderOptions(), nodeTypesReader)
	if err != nil {
		return err
	}
	log.Printf("Loaded graph: %d nodes, %d half-edges", g.NodeCount(), g.EdgeCount())

	tp := walk.New(g, cfg.WalkParams())
	log.Println("Preprocessing transition tables...")
	start := time.Now()
	if err := tp.Build(context.Background(), concurrency); err != nil {
		return err
	}
	log.Printf("Preprocessing done in %s", time.Since(start).Round(time.Millisecond))

	batch := walk.NewBatch(tp, cfg.Walk.Seed)
	log.Printf("Simulating %d walks of length %d per node...", numWalks, walkLength)
	start = time.Now()
	walks, err := batch.SimulateWalks(numWalks, walkLength, cfg.Walk.UseCache)
	if err != nil {
		return err
	}
	log.Printf("Generated %d walks in %s", len(walks), time.Since(start).Round(time.Millisecond))

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	writer, err := corpus.NewWriter(out, zstd.SpeedDefault)
	if err != nil {
		return err
	}
	if err := writer.WriteBatch(walks, g); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	log.Printf("Wrote corpus to %s", outputPath)
	return nil
}
