package enhance

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/bimmerbailey/cssmin/internal/logging"
	"github.com/bimmerbailey/cssmin/internal/minify"
)

// Compressor runs the core compressor followed by the optional passes its
// Config enables.
//
// Usage:
//
//	c := enhance.New(enhance.Aggressive())
//	out, err := c.Compress(css)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("saved %d bytes\n", c.Statistics().Saved())
//
// A Compressor keeps the statistics of its last run and must not be shared
// between goroutines.
type Compressor struct {
	cfg    Config
	logger *log.Logger
	stats  Statistics

	core   func(css string, maxLineLen int) string
	passes []pass
}

// Option configures a Compressor.
type Option func(*Compressor)

// WithLogger sets the logger used for pass failures and fallbacks.
func WithLogger(logger *log.Logger) Option {
	return func(c *Compressor) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Compressor for cfg.
func New(cfg Config, opts ...Option) *Compressor {
	c := &Compressor{
		cfg:    cfg,
		logger: logging.Default(),
		core:   minify.Compress,
		passes: defaultPasses(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Config returns the configuration the Compressor was created with.
func (c *Compressor) Config() Config {
	return c.cfg
}

// Statistics returns the statistics of the last Compress call.
func (c *Compressor) Statistics() Statistics {
	return c.stats
}

// Compress minifies css.
//
// A failing optional pass is skipped and the others still run. If the core
// compressor itself fails, a plain whitespace collapse is used instead and
// FallbackUsed is set. In strict mode the first failure is returned as a
// *CompressionError instead.
func (c *Compressor) Compress(css string) (string, error) {
	c.stats = Statistics{OriginalSize: len(css)}

	enhanced := c.cfg.Enhanced()
	lineBreak := c.cfg.LineBreak
	if enhanced {
		// Lines are broken after the passes, which may join rules.
		lineBreak = 0
	}

	out, err := safely(func() string { return c.core(css, lineBreak) })
	if err != nil {
		if c.cfg.StrictErrorHandling {
			return "", &CompressionError{Stage: "core", Err: err}
		}
		c.logger.Warn("core compression failed, using basic whitespace compression", logging.FieldError, err)
		out = basicCompress(css)
		c.stats.FallbackUsed = true
		enhanced = false
	}

	if enhanced {
		out, err = c.runPasses(out)
		if err != nil {
			return "", err
		}
		c.stats.EnhancedFeaturesUsed = true
	}

	c.finish(out)
	return out, nil
}

func (c *Compressor) runPasses(css string) (string, error) {
	masked, v := minify.Mask(css)
	pc := &passContext{cfg: c.cfg, vault: v, stats: &c.stats}

	for _, p := range c.passes {
		p := p
		if !p.enabled(c.cfg) {
			continue
		}

		input := masked
		out, err := safely(func() string { return p.run(pc, input) })
		if err != nil {
			if c.cfg.StrictErrorHandling {
				return "", &CompressionError{Stage: p.name, Err: err}
			}
			c.logger.Warn("optimization pass failed, skipping", logging.FieldPass, p.name, logging.FieldError, err)
			continue
		}
		masked = out
	}

	masked = minify.Reflow(masked, c.cfg.LineBreak)
	return strings.TrimSpace(v.Unmask(masked)), nil
}

func (c *Compressor) finish(out string) {
	c.stats.CompressedSize = len(out)
	c.stats.CompressionRatio = Ratio(c.stats.OriginalSize, c.stats.CompressedSize)
	if c.cfg.StatisticsEnabled {
		c.stats.GzipSize = GzipSize(out)
		c.stats.ZstdSize = ZstdSize(out)
	}
}

// Result pairs compressed CSS with its statistics.
type Result struct {
	CSS        string     `json:"css" yaml:"css"`
	Statistics Statistics `json:"statistics" yaml:"statistics"`
}

// CompressWithStats compresses source with statistics enabled. Errors only
// occur in strict mode.
func CompressWithStats(source string, cfg Config, opts ...Option) (Result, error) {
	cfg.StatisticsEnabled = true
	c := New(cfg, opts...)

	out, err := c.Compress(source)
	if err != nil {
		return Result{}, err
	}
	return Result{CSS: out, Statistics: c.Statistics()}, nil
}
