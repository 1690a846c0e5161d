// Copyright 2025 go-dwt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dwt

import (
	"fmt"
	"math"
	"strings"
)

// ThresholdMode selects how small coefficients are suppressed.
type ThresholdMode int

const (
	Hard ThresholdMode = iota // zero coefficients below the threshold
	Soft                      // shrink every coefficient toward zero
)

func (m ThresholdMode) String() string {
	switch m {
	case Hard:
		return "hard"
	case Soft:
		return "soft"
	}
	return fmt.Sprintf("ThresholdMode(%d)", int(m))
}

// ParseThresholdMode parses "hard" or "soft" (case-insensitive).
func ParseThresholdMode(s string) (ThresholdMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hard":
		return Hard, nil
	case "soft":
		return Soft, nil
	}
	return 0, fmt.Errorf("%w: threshold mode %q", ErrInvalidPolicy, s)
}

// defaultThreshold is a cutoff of 0.08 on samples normalized to [0,1],
// expressed on the 8-bit scale.
const defaultThreshold = 0.08 * 255

// CompressionPolicy controls coefficient processing for one invocation.
type CompressionPolicy struct {
	// Wavelet names the kernel, see KernelFor. Empty means "haar".
	Wavelet string

	// Mode selects hard or soft thresholding.
	Mode ThresholdMode

	// Threshold is the coefficient magnitude cutoff on the 8-bit sample
	// scale. Zero disables thresholding.
	Threshold float64

	// Levels is the number of decomposition levels. It is clamped to
	// MaxLevels for the input dimensions; 0 skips the transform entirely.
	Levels int

	// RetainLL passes the approximation subband through unmodified.
	RetainLL bool

	// QuantStep enables dead-zone scalar quantization of the coefficients
	// after thresholding. The step is weighted per subband and level,
	// see subbandStep. Zero disables quantization.
	QuantStep float64
}

// DefaultPolicy returns a single-level Haar policy with a hard threshold
// of 0.08 on the [0,1] scale.
func DefaultPolicy() CompressionPolicy {
	return CompressionPolicy{
		Wavelet:   "haar",
		Mode:      Hard,
		Threshold: defaultThreshold,
		Levels:    1,
	}
}

// Validate reports whether p can be applied.
func (p CompressionPolicy) Validate() error {
	if p.Mode != Hard && p.Mode != Soft {
		return fmt.Errorf("%w: %v", ErrInvalidPolicy, p.Mode)
	}
	if math.IsNaN(p.Threshold) || math.IsInf(p.Threshold, 0) || p.Threshold < 0 {
		return fmt.Errorf("%w: threshold %v", ErrInvalidPolicy, p.Threshold)
	}
	if math.IsNaN(p.QuantStep) || math.IsInf(p.QuantStep, 0) || p.QuantStep < 0 {
		return fmt.Errorf("%w: quantization step %v", ErrInvalidPolicy, p.QuantStep)
	}
	if p.Levels < 0 {
		return fmt.Errorf("%w: levels %d", ErrInvalidPolicy, p.Levels)
	}
	return nil
}

func (p CompressionPolicy) wavelet() string {
	if p.Wavelet == "" {
		return "haar"
	}
	return p.Wavelet
}
