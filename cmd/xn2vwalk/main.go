// Command xn2vwalk builds the graph core of a node2vec/xn2v embedding
// pipeline: load an edge list, preprocess biased transition tables, and
// emit a walk corpus.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
