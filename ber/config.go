package ber

import (
	"fmt"

	"github.com/pkg/math"
	"go.uber.org/multierr"
)

// Limits and defaults.
const (
	DefaultMaxDepth = 64
	MinMaxDepth     = 1
	MaxMaxDepth     = 4096
)

// Config contains Decoder options.
type Config struct {
	// MaxDepth is the maximum nesting depth.
	// Top-level elements are at depth 1.
	// Default is DefaultMaxDepth. It is clamped to [MinMaxDepth, MaxMaxDepth].
	MaxDepth int `json:"maxDepth,omitempty"`

	// MaxElements is the maximum number of elements in one decode call, counting nested elements.
	// Zero means unlimited.
	MaxElements int `json:"maxElements,omitempty"`

	// Extended enables decoding of BOOLEAN, NULL, ENUMERATED, INTEGER of any size,
	// IA5String, NumericString, and VisibleString.
	// Without it, these types cause ErrUnsupportedType or ErrUnsupportedEncoding.
	Extended bool `json:"extended,omitempty"`
}

func (cfg *Config) applyDefaults() {
	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	cfg.MaxDepth = math.MinInt(math.MaxInt(cfg.MaxDepth, MinMaxDepth), MaxMaxDepth)
	cfg.MaxElements = math.MaxInt(cfg.MaxElements, 0)
}

// Validate checks Config fields.
// Unlike applyDefaults, it reports out-of-range values instead of clamping them.
// Every problem is reported; each one wraps ErrConfig.
func (cfg Config) Validate() error {
	errs := []error{}
	if cfg.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: maxDepth %d is negative", ErrConfig, cfg.MaxDepth))
	} else if cfg.MaxDepth > MaxMaxDepth {
		errs = append(errs, fmt.Errorf("%w: maxDepth %d exceeds %d", ErrConfig, cfg.MaxDepth, MaxMaxDepth))
	}
	if cfg.MaxElements < 0 {
		errs = append(errs, fmt.Errorf("%w: maxElements %d is negative", ErrConfig, cfg.MaxElements))
	}
	return multierr.Combine(errs...)
}
