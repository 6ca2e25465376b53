package loader

// Options configures how Load interprets an edge-list file: separator,
// optional header, and which column holds which role. Column indices are
// 0-based and only consulted when the corresponding *Col field is >= 0.
type Options struct {
	// Separator splits each line into fields. Defaults to a tab.
	Separator string

	// HasHeader skips the file's first line.
	HasHeader bool

	// SourceCol and DestCol select the source/destination label columns.
	// Both default to 0 and 1 respectively.
	SourceCol int
	DestCol   int

	// WeightCol selects the edge-weight column. -1 means absent: every
	// edge gets DefaultWeight.
	WeightCol int

	// DefaultWeight is used for every edge when WeightCol is -1.
	DefaultWeight float64

	// EdgeTypeCol selects the edge-type column. -1 (the default) means
	// absent: every edge gets type tag 0.
	EdgeTypeCol int
}

// DefaultOptions returns the column layout described in spec §6: tab
// separated, no header, source in column 0, destination in column 1,
// weight in column 2, no edge-type column. A row without a column 2 is
// rejected; DefaultWeight (1.0) applies only when WeightCol is set to -1.
func DefaultOptions() Options {
	return Options{
		Separator:     "\t",
		HasHeader:     false,
		SourceCol:     0,
		DestCol:       1,
		WeightCol:     2,
		DefaultWeight: 1.0,
		EdgeTypeCol:   -1,
	}
}

func (o Options) maxCol() int {
	m := o.SourceCol
	if o.DestCol > m {
		m = o.DestCol
	}
	if o.WeightCol > m {
		m = o.WeightCol
	}
	if o.EdgeTypeCol > m {
		m = o.EdgeTypeCol
	}
	return m
}
