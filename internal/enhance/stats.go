package enhance

import (
	"bytes"
	"math"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Statistics describes one compression run.
type Statistics struct {
	OriginalSize   int `json:"original_size" yaml:"original_size"`
	CompressedSize int `json:"compressed_size" yaml:"compressed_size"`
	// CompressionRatio is the size reduction in percent, rounded to two
	// decimals. It is 0 for empty input.
	CompressionRatio float64 `json:"compression_ratio" yaml:"compression_ratio"`

	// GzipSize and ZstdSize are the transfer sizes of the output. Only set
	// when statistics are enabled.
	GzipSize int `json:"gzip_size,omitempty" yaml:"gzip_size,omitempty"`
	ZstdSize int `json:"zstd_size,omitempty" yaml:"zstd_size,omitempty"`

	SelectorsMerged     int `json:"selectors_merged" yaml:"selectors_merged"`
	PropertiesOptimized int `json:"properties_optimized" yaml:"properties_optimized"`
	ColorsConverted     int `json:"colors_converted" yaml:"colors_converted"`
	CommentsRemoved     int `json:"comments_removed" yaml:"comments_removed"`

	EnhancedFeaturesUsed bool `json:"enhanced_features_used" yaml:"enhanced_features_used"`
	FallbackUsed         bool `json:"fallback_used" yaml:"fallback_used"`
}

// Saved returns the number of bytes removed.
func (s Statistics) Saved() int {
	return s.OriginalSize - s.CompressedSize
}

// Ratio computes the size reduction in percent, rounded to two decimals.
func Ratio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	pct := float64(original-compressed) / float64(original) * 100
	return math.Round(pct*100) / 100
}

// Shared encoder; EncodeAll is safe for concurrent use.
var zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))

// GzipSize returns the size of css after gzip at best compression.
func GzipSize(css string) int {
	if css == "" {
		return 0
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return 0
	}
	if _, err := zw.Write([]byte(css)); err != nil {
		return 0
	}
	if err := zw.Close(); err != nil {
		return 0
	}
	return buf.Len()
}

// ZstdSize returns the size of css after zstd compression.
func ZstdSize(css string) int {
	if css == "" || zstdEncoder == nil {
		return 0
	}
	return len(zstdEncoder.EncodeAll([]byte(css), nil))
}
