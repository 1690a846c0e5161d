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
)

// MSE returns the mean squared error between two 8-bit rasters.
func MSE(a, b []byte) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d samples", ErrSizeMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum / float64(len(a)), nil
}

// PSNR returns the peak signal-to-noise ratio in dB for 8-bit samples.
// Identical rasters yield +Inf.
func PSNR(original, reconstructed []byte) (float64, error) {
	mse, err := MSE(original, reconstructed)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 10.0 * math.Log10(255.0*255.0/mse), nil
}
