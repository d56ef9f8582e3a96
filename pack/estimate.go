package pack

import (
	"math"
	"strings"
)

// defaultRatio is the compression ratio assumed for unknown extensions.
const defaultRatio = 0.6

// maxOverhead caps the per-file archive overhead added to every estimate.
const maxOverhead = 100

// RatioTable maps a lowercase file extension (including the leading dot) to
// an expected compression ratio. Ratios above 1.0 model formats that grow
// slightly when archived.
type RatioTable map[string]float64

// DefaultRatioTable returns the built-in extension ratio table.
// The returned map is a fresh copy, so callers may modify it freely before
// passing it to NewEstimator.
func DefaultRatioTable() RatioTable {
	return RatioTable{
		// Already compressed formats (minimal compression)
		".zip": 1.0, ".rar": 1.0, ".7z": 1.0, ".gz": 1.0, ".bz2": 1.0,
		".jpg": 1.0, ".jpeg": 1.0, ".png": 1.05, ".gif": 1.0,
		".mp4": 1.0, ".avi": 1.0, ".mkv": 1.0, ".mov": 1.0,
		".mp3": 1.0, ".flac": 1.0, ".aac": 1.0, ".ogg": 1.0,
		".pdf": 1.1, ".docx": 1.1, ".xlsx": 1.1, ".pptx": 1.1,

		// Text and data files (good compression)
		".txt": 0.3, ".md": 0.35, ".csv": 0.4, ".json": 0.4, ".xml": 0.5,
		".html": 0.4, ".css": 0.35, ".js": 0.45, ".ts": 0.45,
		".py": 0.4, ".java": 0.45, ".cpp": 0.45, ".c": 0.45,
		".log": 0.2, ".sql": 0.4, ".yaml": 0.4, ".yml": 0.4,

		// Binary data (moderate compression)
		".exe": 0.7, ".dll": 0.7, ".bin": 0.8, ".dat": 0.6,
		".db": 0.6, ".sqlite": 0.6, ".iso": 0.9,

		// Images (varies)
		".bmp": 0.1, ".tiff": 0.4, ".svg": 0.3, ".ico": 0.8,

		// Documents
		".doc": 0.5, ".rtf": 0.4, ".odt": 0.7, ".tex": 0.4,
	}
}

// Estimator predicts the post-compression size of a file from its extension
// and raw size without ever compressing anything. It is a pure function of
// its inputs and the ratio table it was constructed with.
type Estimator struct {
	ratios RatioTable
}

// NewEstimator creates an Estimator backed by the given ratio table.
// A nil table selects DefaultRatioTable.
func NewEstimator(ratios RatioTable) Estimator {
	if ratios == nil {
		ratios = DefaultRatioTable()
	}
	return Estimator{ratios: ratios}
}

// Estimate returns the estimated compressed size in bytes for a file with
// the given extension and raw size. The extension is matched
// case-insensitively. A zero-byte file estimates to zero.
//
// Small files are dominated by archive bookkeeping, so a per-file overhead
// of min(100, size*0.1) bytes is used both as the floor of the estimate and
// as an additive term on top of the ratio prediction.
func (e Estimator) Estimate(extension string, size int64) int64 {
	if size <= 0 {
		return 0
	}
	ratio, ok := e.ratios[strings.ToLower(extension)]
	if !ok {
		ratio = defaultRatio
	}
	overhead := math.Min(maxOverhead, float64(size)*0.1)
	estimate := math.Max(overhead, float64(size)*ratio+overhead)
	return int64(math.Round(estimate))
}
