package config

import (
	"github.com/azybler/xn2vwalk/pkg/loader"
	"github.com/azybler/xn2vwalk/pkg/walk"
)

// LoaderOptions translates the graph section into loader.Options.
func (c *Config) LoaderOptions() loader.Options {
	return loader.Options{
		Separator:     c.Graph.Separator,
		HasHeader:     c.Graph.HasHeader,
		SourceCol:     c.Graph.SourceCol,
		DestCol:       c.Graph.DestCol,
		WeightCol:     c.Graph.WeightCol,
		DefaultWeight: c.Graph.DefaultWeight,
		EdgeTypeCol:   c.Graph.EdgeTypeCol,
	}
}

// WalkParams translates the walk section into walk.Params.
func (c *Config) WalkParams() walk.Params {
	mode := walk.Homogeneous
	if c.Walk.Heterogeneous {
		mode = walk.Heterogeneous
	}
	return walk.Params{
		P:                    c.Walk.P,
		Q:                    c.Walk.Q,
		Gamma:                c.Walk.Gamma,
		ChangeNodeTypeWeight: c.Walk.ChangeNodeTypeWeight,
		ChangeEdgeTypeWeight: c.Walk.ChangeEdgeTypeWeight,
		Mode:                 mode,
	}
}
