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
	"errors"
	"math"
	"testing"
)

func TestKernelFor(t *testing.T) {
	tests := []struct {
		name string
		want string
		taps int
		typ  WaveletType
	}{
		{"haar", "haar", 2, FilterBank},
		{"HAAR", "haar", 2, FilterBank},
		{"db1", "haar", 2, FilterBank},
		{"db2", "db2", 4, FilterBank},
		{"Daubechies4", "db2", 4, FilterBank},
		{" d4 ", "db2", 4, FilterBank},
		{"db3", "db3", 6, FilterBank},
		{"cdf97", "cdf97", 9, Lifting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := KernelFor(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if k.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", k.Name(), tt.want)
			}
			if k.Len() != tt.taps {
				t.Errorf("Len() = %d, want %d", k.Len(), tt.taps)
			}
			if k.Type() != tt.typ {
				t.Errorf("Type() = %v, want %v", k.Type(), tt.typ)
			}
		})
	}
}

func TestKernelFor_Unknown(t *testing.T) {
	for _, name := range []string{"", "sym8", "coif1", "haar2"} {
		k, err := KernelFor(name)
		if !errors.Is(err, ErrUnknownWavelet) {
			t.Errorf("KernelFor(%q) err = %v, want ErrUnknownWavelet", name, err)
		}
		if k != nil {
			t.Errorf("KernelFor(%q) returned a kernel", name)
		}
	}
}

func TestKernels_AllResolve(t *testing.T) {
	for _, name := range Kernels() {
		if _, err := KernelFor(name); err != nil {
			t.Errorf("KernelFor(%q): %v", name, err)
		}
	}
}

func TestKernel_PerfectReconstructionCondition(t *testing.T) {
	const tol = 1e-12
	for _, name := range []string{"haar", "db2", "db3"} {
		t.Run(name, func(t *testing.T) {
			k, _ := KernelFor(name)
			decLo := k.DecompositionLowPass()
			decHi := k.DecompositionHighPass()
			recLo := k.ReconstructionLowPass()
			recHi := k.ReconstructionHighPass()
			n := len(decLo)

			for j := range n {
				if recLo[j] != decLo[n-1-j] {
					t.Errorf("recLo[%d] = %v, want reversed decLo %v", j, recLo[j], decLo[n-1-j])
				}
				sign := 1.0
				if j%2 == 1 {
					sign = -1
				}
				if recHi[j] != sign*decLo[j] {
					t.Errorf("recHi[%d] = %v, want %v", j, recHi[j], sign*decLo[j])
				}
				if decHi[j] != recHi[n-1-j] {
					t.Errorf("decHi[%d] = %v, want reversed recHi %v", j, decHi[j], recHi[n-1-j])
				}
			}

			var sum, hiSum float64
			for j := range n {
				sum += decLo[j]
				hiSum += decHi[j]
			}
			if math.Abs(sum-math.Sqrt2) > tol {
				t.Errorf("sum(decLo) = %v, want sqrt(2)", sum)
			}
			if math.Abs(hiSum) > tol {
				t.Errorf("sum(decHi) = %v, want 0", hiSum)
			}

			// Orthonormality: autocorrelation vanishes at nonzero even lags.
			for lag := 0; lag < n; lag += 2 {
				var r float64
				for j := 0; j+lag < n; j++ {
					r += decLo[j] * decLo[j+lag]
				}
				want := 0.0
				if lag == 0 {
					want = 1
				}
				if math.Abs(r-want) > tol {
					t.Errorf("autocorrelation at lag %d = %v, want %v", lag, r, want)
				}
			}
		})
	}
}

func TestKernel_TapsAreCopies(t *testing.T) {
	k, _ := KernelFor("db2")
	taps := k.DecompositionLowPass()
	taps[0] = 100
	if k.DecompositionLowPass()[0] == 100 {
		t.Error("mutating returned taps changed the kernel")
	}
}

func TestKernel_LiftingHasNoTaps(t *testing.T) {
	k, _ := KernelFor("cdf97")
	if k.DecompositionLowPass() != nil || k.ReconstructionHighPass() != nil {
		t.Error("lifting kernel should not expose filter-bank taps")
	}
}
