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

import "math"

// ProcessSubband applies policy to one subband and returns a new buffer;
// sub is not modified. level is 1 for the finest decomposition level.
//
// Hard thresholding zeros every coefficient with |v| < Threshold. Soft
// thresholding shrinks each coefficient toward zero by Threshold and clamps
// at zero. When RetainLL is set the LL band is returned unchanged.
// ProcessSubband never fails.
func ProcessSubband(sub *SampleBuffer, band Band, level int, policy CompressionPolicy) *SampleBuffer {
	out := sub.Clone()
	if band == BandLL && policy.RetainLL {
		return out
	}
	coeffs := out.samples
	if policy.Threshold > 0 {
		switch policy.Mode {
		case Soft:
			softThreshold(coeffs, policy.Threshold)
		default:
			hardThreshold(coeffs, policy.Threshold)
		}
	}
	if policy.QuantStep > 0 {
		step := subbandStep(policy.QuantStep, band, level)
		for i, v := range coeffs {
			coeffs[i] = dequantize(quantize(v, step), step)
		}
	}
	return out
}

func hardThreshold(coeffs []float64, t float64) {
	for i, v := range coeffs {
		if math.Abs(v) < t {
			coeffs[i] = 0
		}
	}
}

func softThreshold(coeffs []float64, t float64) {
	for i, v := range coeffs {
		mag := math.Abs(v) - t
		if mag <= 0 {
			coeffs[i] = 0
			continue
		}
		coeffs[i] = math.Copysign(mag, v)
	}
}

// subbandStep weights the base quantization step by orientation and level.
//
// Gain factors per orientation (relative energy weighting):
//
//	LL: 1.0, LH and HL: 2.0 (one high-pass filtering), HH: 4.0
//
// Each coarser level halves the step, since its coefficients carry more
// of the image energy per sample.
func subbandStep(base float64, band Band, level int) float64 {
	gain := 1.0
	switch band {
	case BandLH, BandHL:
		gain = 2.0
	case BandHH:
		gain = 4.0
	}
	levelFactor := math.Pow(2, float64(max(level, 1)-1))
	return base * gain / levelFactor
}

// quantize performs forward dead-zone quantization:
//
//	q = sign(a) * floor(|a| / step)
//
// Coefficients with magnitude below step quantize to 0, so the dead zone
// is 2*step wide.
func quantize(v, step float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v / step))
	}
	return -int64(math.Floor(-v / step))
}

// dequantize reconstructs at the midpoint of the quantization bin:
//
//	a = sign(q) * (|q| + 0.5) * step   (q != 0)
//	a = 0                              (q == 0)
func dequantize(q int64, step float64) float64 {
	switch {
	case q == 0:
		return 0
	case q > 0:
		return (float64(q) + 0.5) * step
	default:
		return -(float64(-q) + 0.5) * step
	}
}
