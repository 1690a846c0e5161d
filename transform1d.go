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

	"github.com/ajroetker/go-highway/hwy/contrib/image"
	"github.com/ajroetker/go-highway/hwy/contrib/wavelet"
)

// lineBufs holds reusable working storage for 1D transforms.
// Allocated once per 2D call, reused across all rows and columns.
type lineBufs struct {
	ext []float64
	out []float64
}

// ensure grows the internal buffers to accommodate a line of length n.
func (b *lineBufs) ensure(n int) {
	n += n % 2
	if cap(b.ext) < n {
		b.ext = make([]float64, n)
	}
	if cap(b.out) < n {
		b.out = make([]float64, n)
	}
}

// splitLens returns the approximation and detail lengths produced from a
// line of length n. Filter banks periodize odd lines so both halves are
// ceil(n/2); lifting keeps the ceil/floor split.
func splitLens(n int, k *Kernel) (approx, detail int) {
	if k.typ == Lifting {
		return (n + 1) / 2, n / 2
	}
	return (n + 1) / 2, (n + 1) / 2
}

// Forward1D performs one level of forward DWT on line.
//
// Filter-bank kernels use periodic extension: an odd-length line is first
// extended by repeating its last sample to even length N, then
//
//	approx[i] = sum_t decLo[t] * x[(2i+L-1-t) mod N]
//	detail[i] = sum_t decHi[t] * x[(2i+L-1-t) mod N]
//
// For Haar this gives approx[i] = (x[2i]+x[2i+1])/sqrt(2) and
// detail[i] = (x[2i]-x[2i+1])/sqrt(2).
//
// Lifting kernels (cdf97) instead use go-highway's clamped boundary and split
// the line into ceil(n/2) approximation and floor(n/2) detail coefficients.
//
// The line is not modified.
func Forward1D(line []float64, k *Kernel) (approx, detail []float64) {
	la, ld := splitLens(len(line), k)
	approx = make([]float64, la)
	detail = make([]float64, ld)
	var bufs lineBufs
	bufs.ensure(len(line))
	forward1D(line, k, approx, detail, &bufs)
	return approx, detail
}

// Inverse1D reconstructs a line of length n from its approximation and
// detail coefficients. The two sequences may differ in length by at most
// one, and n must be consistent with them.
func Inverse1D(approx, detail []float64, k *Kernel, n int) ([]float64, error) {
	if err := checkSplit(len(approx), len(detail), k, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	var bufs lineBufs
	bufs.ensure(n)
	inverse1D(approx, detail, k, out, &bufs)
	return out, nil
}

// checkSplit validates coefficient lengths against the target length n.
func checkSplit(la, ld int, k *Kernel, n int) error {
	diff := la - ld
	if diff < -1 || diff > 1 {
		return fmt.Errorf("%w: approx %d, detail %d", ErrLengthMismatch, la, ld)
	}
	if n < 0 {
		return fmt.Errorf("%w: negative output length %d", ErrLengthMismatch, n)
	}
	if k.typ == Lifting {
		if la != (n+1)/2 || ld != n/2 {
			return fmt.Errorf("%w: approx %d, detail %d for length %d", ErrLengthMismatch, la, ld, n)
		}
		return nil
	}
	half := max(la, ld)
	if n > 2*half || n < 2*half-1 {
		return fmt.Errorf("%w: approx %d, detail %d for length %d", ErrLengthMismatch, la, ld, n)
	}
	return nil
}

// forward1D writes the transform of line into approx and detail, which must
// already have the lengths reported by splitLens.
func forward1D(line []float64, k *Kernel, approx, detail []float64, bufs *lineBufs) {
	n := len(line)
	if n == 0 {
		return
	}
	if k.typ == Lifting {
		analyze97(line, approx, detail, bufs)
		return
	}

	half := (n + 1) / 2
	size := 2 * half
	ext := bufs.ext[:size]
	copy(ext, line)
	if n < size {
		ext[size-1] = line[n-1]
	}

	taps := len(k.decLo)
	for i := range half {
		var a, d float64
		base := 2*i + taps - 1
		for t := range taps {
			v := ext[image.Wrap(base-t, size)]
			a += k.decLo[t] * v
			d += k.decHi[t] * v
		}
		approx[i] = a
		detail[i] = d
	}
}

// inverse1D reconstructs len(dst) samples. Lengths must already have been
// validated with checkSplit.
func inverse1D(approx, detail []float64, k *Kernel, dst []float64, bufs *lineBufs) {
	n := len(dst)
	if n == 0 {
		return
	}
	if k.typ == Lifting {
		synthesize97(approx, detail, dst)
		return
	}

	// Upsample by two and convolve with the synthesis filters. A shorter
	// coefficient sequence contributes zeros past its end.
	half := max(len(approx), len(detail))
	size := 2 * half
	out := bufs.out[:size]
	clear(out)
	taps := len(k.recLo)
	for i := range half {
		var a, d float64
		if i < len(approx) {
			a = approx[i]
		}
		if i < len(detail) {
			d = detail[i]
		}
		for t := range taps {
			idx := image.Wrap(2*i+t, size)
			out[idx] += k.recLo[t]*a + k.recHi[t]*d
		}
	}
	copy(dst, out[:n])
}

// analyze97 runs the CDF 9/7 lifting analysis on a copy of line.
// The library writes [low | high] in place with low holding ceil(n/2)
// samples.
func analyze97(line, approx, detail []float64, bufs *lineBufs) {
	work := bufs.ext[:len(line)]
	copy(work, line)
	wavelet.Analyze97(work, 0)
	copy(approx, work[:len(approx)])
	copy(detail, work[len(approx):])
}

// synthesize97 inverts analyze97 into dst.
func synthesize97(approx, detail, dst []float64) {
	copy(dst, approx)
	copy(dst[len(approx):], detail)
	wavelet.Synthesize97(dst, 0)
}
