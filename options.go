package annoy

// OpenOption configures an Engine at Open time, following the usual
// functional-options pattern.
type OpenOption func(*openConfig)

type openConfig struct {
	blockNodes int
	logger     Logger
}

func defaultOpenConfig() openConfig {
	return openConfig{logger: noopLogger{}}
}

// WithBlockSize overrides the number of whole nodes per mmap block. The
// default is the largest whole-node multiple not exceeding a 2 GiB
// mapping; tests may set this as low as 1 node to exercise the
// multi-block stitching path.
func WithBlockSize(nodesPerBlock int) OpenOption {
	return func(c *openConfig) {
		c.blockNodes = nodesPerBlock
	}
}

// WithLogger installs a Logger for the rare debug-level diagnostics the
// engine emits. A nil logger is equivalent to not passing this option.
func WithLogger(logger Logger) OpenOption {
	return func(c *openConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}
