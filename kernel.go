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
	"slices"
	"strings"
)

// WaveletType selects how a Kernel is evaluated.
type WaveletType int

const (
	// FilterBank kernels are orthogonal filter pairs applied by periodized
	// convolution and downsampling.
	FilterBank WaveletType = iota
	// Lifting kernels are evaluated with the CDF 9/7 lifting scheme.
	Lifting
)

// Decomposition low-pass taps of the supported orthogonal families.
// The remaining three filters are derived in newOrthogonalKernel.
var (
	haarDecLo = []float64{0.7071067811865476, 0.7071067811865476}

	db2DecLo = []float64{
		-0.12940952255126037,
		0.22414386804201339,
		0.8365163037378079,
		0.48296291314453416,
	}

	db3DecLo = []float64{
		0.03522629188570953,
		-0.08544127388202666,
		-0.13501102001025458,
		0.45987750211849154,
		0.8068915093110925,
		0.33267055295008263,
	}
)

// Kernel is an immutable wavelet filter set.
type Kernel struct {
	name  string
	typ   WaveletType
	decLo []float64
	decHi []float64
	recLo []float64
	recHi []float64
}

// newOrthogonalKernel derives the high-pass and reconstruction filters from
// the decomposition low-pass taps:
//
//	recLo    = reverse(decLo)
//	recHi[j] = (-1)^j * decLo[j]
//	decHi    = reverse(recHi)
func newOrthogonalKernel(name string, decLo []float64) *Kernel {
	n := len(decLo)
	k := &Kernel{
		name:  name,
		typ:   FilterBank,
		decLo: slices.Clone(decLo),
		decHi: make([]float64, n),
		recLo: make([]float64, n),
		recHi: make([]float64, n),
	}
	for j, v := range decLo {
		k.recLo[n-1-j] = v
		if j%2 == 0 {
			k.recHi[j] = v
		} else {
			k.recHi[j] = -v
		}
	}
	for j, v := range k.recHi {
		k.decHi[n-1-j] = v
	}
	return k
}

var kernelAliases = map[string]string{
	"haar":        "haar",
	"db1":         "haar",
	"db2":         "db2",
	"d4":          "db2",
	"daubechies4": "db2",
	"db3":         "db3",
	"d6":          "db3",
	"daubechies6": "db3",
	"cdf97":       "cdf97",
	"cdf9/7":      "cdf97",
	"9/7":         "cdf97",
}

// KernelFor returns the kernel registered under name (case-insensitive).
func KernelFor(name string) (*Kernel, error) {
	canonical, ok := kernelAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWavelet, name)
	}
	switch canonical {
	case "haar":
		return newOrthogonalKernel(canonical, haarDecLo), nil
	case "db2":
		return newOrthogonalKernel(canonical, db2DecLo), nil
	case "db3":
		return newOrthogonalKernel(canonical, db3DecLo), nil
	default:
		return &Kernel{name: canonical, typ: Lifting}, nil
	}
}

// Kernels returns the canonical names accepted by KernelFor.
func Kernels() []string {
	return []string{"haar", "db2", "db3", "cdf97"}
}

// Name returns the canonical kernel name.
func (k *Kernel) Name() string { return k.name }

// Type reports whether k is a filter bank or a lifting kernel.
func (k *Kernel) Type() WaveletType { return k.typ }

// Len returns the filter length. Lifting kernels report the 9-tap
// analysis support.
func (k *Kernel) Len() int {
	if k.typ == Lifting {
		return 9
	}
	return len(k.decLo)
}

// DecompositionLowPass returns a copy of the analysis low-pass taps.
// Lifting kernels have no filter-bank taps and return nil.
func (k *Kernel) DecompositionLowPass() []float64 { return slices.Clone(k.decLo) }

// DecompositionHighPass returns a copy of the analysis high-pass taps.
func (k *Kernel) DecompositionHighPass() []float64 { return slices.Clone(k.decHi) }

// ReconstructionLowPass returns a copy of the synthesis low-pass taps.
func (k *Kernel) ReconstructionLowPass() []float64 { return slices.Clone(k.recLo) }

// ReconstructionHighPass returns a copy of the synthesis high-pass taps.
func (k *Kernel) ReconstructionHighPass() []float64 { return slices.Clone(k.recHi) }

func (k *Kernel) String() string { return k.name }
