package canvas

// Config carries the tunables of the interactive geometry engine.
// All values are in diagram-space units.
type Config struct {
	// GridSize is the quantization step applied to an axis the alignment
	// engine did not snap.
	GridSize float64 `yaml:"gridSize"`
	// SnapTolerance is the maximum offset at which an alignment candidate
	// qualifies.
	SnapTolerance float64 `yaml:"snapTolerance"`

	// NodeWidth and NodeHeight are fallback footprints for nodes whose
	// snapshot carries no size.
	NodeWidth  float64 `yaml:"nodeWidth"`
	NodeHeight float64 `yaml:"nodeHeight"`

	// CollapseEpsilon is how close to its auto position a node must land
	// for a commit to clear the override instead of persisting it.
	CollapseEpsilon float64 `yaml:"collapseEpsilon"`

	// NudgeStep is the fine keyboard-nudge distance. Coarse nudges move by
	// GridSize and always land on the grid.
	NudgeStep float64 `yaml:"nudgeStep"`

	// Label box estimation. Width grows with the longest line, height with
	// the line count, both clamped to a minimum.
	LabelCharWidth  float64 `yaml:"labelCharWidth"`
	LabelLineHeight float64 `yaml:"labelLineHeight"`
	LabelMinWidth   float64 `yaml:"labelMinWidth"`
	LabelMinHeight  float64 `yaml:"labelMinHeight"`

	// Viewport fitting.
	FitPadding    float64 `yaml:"fitPadding"`
	SmoothFactor  float64 `yaml:"smoothFactor"`
	SmoothEpsilon float64 `yaml:"smoothEpsilon"`
}

func DefaultConfig() Config {
	return Config{
		GridSize:        10,
		SnapTolerance:   6,
		NodeWidth:       120,
		NodeHeight:      40,
		CollapseEpsilon: 0.5,
		NudgeStep:       1,
		LabelCharWidth:  8,
		LabelLineHeight: 16,
		LabelMinWidth:   24,
		LabelMinHeight:  16,
		FitPadding:      24,
		SmoothFactor:    0.25,
		SmoothEpsilon:   0.5,
	}
}
