// Package config loads the engine's run configuration: graph input paths,
// loader column layout, node2vec/xn2v bias parameters, and worker
// concurrency. It follows the same viper-backed, env-override-aware
// pattern the rest of the module's configuration tooling uses.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete run configuration for the xn2vwalk engine.
type Config struct {
	Graph   GraphConfig   `mapstructure:"graph"`
	Walk    WalkConfig    `mapstructure:"walk"`
	Output  OutputConfig  `mapstructure:"output"`
	Workers WorkersConfig `mapstructure:"workers"`
}

// GraphConfig describes the input edge-list/node-type files and their
// column layout.
type GraphConfig struct {
	EdgesPath     string  `mapstructure:"edgesPath"`
	NodeTypesPath string  `mapstructure:"nodeTypesPath"`
	Separator     string  `mapstructure:"separator"`
	HasHeader     bool    `mapstructure:"hasHeader"`
	SourceCol     int     `mapstructure:"sourceCol"`
	DestCol       int     `mapstructure:"destCol"`
	WeightCol     int     `mapstructure:"weightCol"`
	DefaultWeight float64 `mapstructure:"defaultWeight"`
	EdgeTypeCol   int     `mapstructure:"edgeTypeCol"`
}

// WalkConfig holds node2vec/xn2v bias parameters and walk shape.
type WalkConfig struct {
	P                    float64 `mapstructure:"p"`
	Q                    float64 `mapstructure:"q"`
	Gamma                float64 `mapstructure:"gamma"`
	ChangeNodeTypeWeight float64 `mapstructure:"changeNodeTypeWeight"`
	ChangeEdgeTypeWeight float64 `mapstructure:"changeEdgeTypeWeight"`
	Heterogeneous        bool    `mapstructure:"heterogeneous"`
	NumWalks             int     `mapstructure:"numWalks"`
	WalkLength           int     `mapstructure:"walkLength"`
	Seed                 int64   `mapstructure:"seed"`
	UseCache             bool    `mapstructure:"useCache"`
}

// OutputConfig describes where the generated corpus is written.
type OutputConfig struct {
	CorpusPath string `mapstructure:"corpusPath"`
}

// WorkersConfig bounds preprocessing concurrency.
type WorkersConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// DefaultConfig returns the configuration used when no file is found and
// no environment overrides apply: tab-separated, no header, unbiased
// homogeneous node2vec, worker concurrency 0 (resolved to
// runtime.NumCPU() by package walk).
func DefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			Separator:     "\t",
			SourceCol:     0,
			DestCol:       1,
			WeightCol:     2,
			DefaultWeight: 1.0,
			EdgeTypeCol:   -1,
		},
		Walk: WalkConfig{
			P: 1, Q: 1, Gamma: 1,
			ChangeNodeTypeWeight: 1,
			ChangeEdgeTypeWeight: 1,
			NumWalks:             10,
			WalkLength:           80,
			Seed:                 1,
		},
		Output: OutputConfig{
			CorpusPath: "corpus.txt.zst",
		},
	}
}

// Load reads config.yaml (or .json/.toml, per viper's auto-detection)
// from configDir, falling back to DefaultConfig if no file is present, and
// applies XN2VWALK_-prefixed environment variable overrides on top.
func Load(configDir string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("graph.separator", def.Graph.Separator)
	v.SetDefault("graph.sourceCol", def.Graph.SourceCol)
	v.SetDefault("graph.destCol", def.Graph.DestCol)
	v.SetDefault("graph.weightCol", def.Graph.WeightCol)
	v.SetDefault("graph.defaultWeight", def.Graph.DefaultWeight)
	v.SetDefault("graph.edgeTypeCol", def.Graph.EdgeTypeCol)
	v.SetDefault("walk.p", def.Walk.P)
	v.SetDefault("walk.q", def.Walk.Q)
	v.SetDefault("walk.gamma", def.Walk.Gamma)
	v.SetDefault("walk.changeNodeTypeWeight", def.Walk.ChangeNodeTypeWeight)
	v.SetDefault("walk.changeEdgeTypeWeight", def.Walk.ChangeEdgeTypeWeight)
	v.SetDefault("walk.numWalks", def.Walk.NumWalks)
	v.SetDefault("walk.walkLength", def.Walk.WalkLength)
	v.SetDefault("walk.seed", def.Walk.Seed)
	v.SetDefault("output.corpusPath", def.Output.CorpusPath)

	v.SetConfigName("config")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("xn2vwalk")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: reading %s: %w", filepath.Join(configDir, "config.*"), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	return &cfg, nil
}
