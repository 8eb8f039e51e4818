// Package scanner binds a target invader to the two thresholds that
// control a search: a cheap signal threshold used to discard windows
// before the expensive per-pixel comparison runs, and a similarity
// threshold that decides whether a comparison counts as a hit.
package scanner

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/nullsector/invaderscan/bitmatrix"
	"github.com/nullsector/invaderscan/invader"
)

// defaultSignalFloor and defaultSignalMargin are the constants behind the
// default signal threshold, max(defaultSignalFloor, signalRatio -
// defaultSignalMargin). Both are arbitrary working defaults, not derived
// from any property of a particular invader; callers that need different
// behavior should override them with an Option.
const (
	defaultSignalFloor     = 0.1
	defaultSignalMargin    = 0.2
	defaultSimilarityFloor = 0.7
)

// config is the validated, fully-resolved threshold pair a Scanner is
// built from.
type config struct {
	SignalThreshold     float64 `validate:"gte=0,lte=1"`
	SimilarityThreshold float64 `validate:"gte=0,lte=1"`
}

var validate = validator.New()

// Scanner decides, for a given invader, whether a candidate window's raw
// signal-bit count justifies a full comparison, and performs that
// comparison.
type Scanner struct {
	target invader.Invader
	cfg    config
}

// Option customizes Scanner construction.
type Option func(*config)

// WithSignalThreshold overrides the default signal threshold.
func WithSignalThreshold(threshold float64) Option {
	return func(c *config) { c.SignalThreshold = threshold }
}

// WithSimilarityThreshold overrides the default similarity threshold.
func WithSimilarityThreshold(threshold float64) Option {
	return func(c *config) { c.SimilarityThreshold = threshold }
}

// New builds a Scanner targeting the given invader. Without options, the
// signal threshold defaults to max(0.1, target.SignalRatio()-0.2) and the
// similarity threshold defaults to 0.7. It returns an error if the
// resolved thresholds fall outside [0,1].
func New(target invader.Invader, opts ...Option) (Scanner, error) {
	cfg := config{
		SignalThreshold:     defaultSignalThreshold(target),
		SimilarityThreshold: defaultSimilarityFloor,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate.Struct(cfg); err != nil {
		return Scanner{}, fmt.Errorf("scanner: invalid thresholds: %w", err)
	}

	return Scanner{target: target, cfg: cfg}, nil
}

func defaultSignalThreshold(target invader.Invader) float64 {
	margin := target.SignalRatio() - defaultSignalMargin
	if margin > defaultSignalFloor {
		return margin
	}
	return defaultSignalFloor
}

// SignalThreshold returns the resolved signal threshold.
func (s Scanner) SignalThreshold() float64 { return s.cfg.SignalThreshold }

// SimilarityThreshold returns the resolved similarity threshold.
func (s Scanner) SimilarityThreshold() float64 { return s.cfg.SimilarityThreshold }

// RequiredFrameSize returns the (width, height) every candidate window
// must have to be compared against the target invader.
func (s Scanner) RequiredFrameSize() (width, height int) {
	return s.target.Width(), s.target.Height()
}

// IsWorthProcessingFrame reports whether a window containing
// signalBitsInFrame 1-bits reaches the signal threshold, i.e. whether
// signalBitsInFrame / TotalBits() >= SignalThreshold(). If the window has far fewer signal bits than the invader, bit-wise
// similarity cannot reach the threshold and the full comparison would be
// wasted.
func (s Scanner) IsWorthProcessingFrame(signalBitsInFrame int) bool {
	ratio := float64(signalBitsInFrame) / float64(s.target.TotalBits())
	return ratio >= s.cfg.SignalThreshold
}

// ProcessFrame computes the similarity ratio between frame and the
// target invader's pattern.
func (s Scanner) ProcessFrame(frame bitmatrix.Matrix) (float64, error) {
	return s.target.MatchAgainstFrame(frame)
}

// Target returns the invader this scanner was built for.
func (s Scanner) Target() invader.Invader { return s.target }
