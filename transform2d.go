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
)

// Band identifies one of the four subbands of a decomposition level.
type Band int

const (
	BandLL Band = iota // low-pass rows, low-pass columns
	BandLH             // low-pass rows, high-pass columns
	BandHL             // high-pass rows, low-pass columns
	BandHH             // high-pass rows, high-pass columns
)

var bandNames = [...]string{"LL", "LH", "HL", "HH"}

func (b Band) String() string {
	if b < BandLL || b > BandHH {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return bandNames[b]
}

// SubbandSet is one level of a 2D decomposition. Width and Height are the
// dimensions of the buffer the level was computed from.
type SubbandSet struct {
	Width, Height  int
	LL, LH, HL, HH *SampleBuffer
}

// Band returns the subband named by b.
func (s *SubbandSet) Band(b Band) *SampleBuffer {
	switch b {
	case BandLL:
		return s.LL
	case BandLH:
		return s.LH
	case BandHL:
		return s.HL
	case BandHH:
		return s.HH
	}
	return nil
}

// setBand replaces the subband named by b.
func (s *SubbandSet) setBand(b Band, buf *SampleBuffer) {
	switch b {
	case BandLL:
		s.LL = buf
	case BandLH:
		s.LH = buf
	case BandHL:
		s.HL = buf
	case BandHH:
		s.HH = buf
	}
}

// Forward2D performs one level of separable 2D forward DWT.
// Rows are analyzed first into L and H, then the columns of L give LL and
// LH and the columns of H give HL and HH. Inverse2D undoes the two passes
// in reverse order.
func Forward2D(b *SampleBuffer, k *Kernel) (*SubbandSet, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: nil kernel", ErrUnknownWavelet)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrSizeMismatch)
	}
	width, height := b.width, b.height
	rowLo, rowHi := splitLens(width, k)
	colLo, colHi := splitLens(height, k)

	var bufs lineBufs
	bufs.ensure(max(width, height))

	// Horizontal analysis first (process rows)
	l := NewSampleBuffer(rowLo, height)
	h := NewSampleBuffer(rowHi, height)
	for y := range height {
		forward1D(b.Row(y), k, l.Row(y), h.Row(y), &bufs)
	}

	// Vertical analysis second (process columns)
	s := &SubbandSet{
		Width:  width,
		Height: height,
		LL:     NewSampleBuffer(rowLo, colLo),
		LH:     NewSampleBuffer(rowLo, colHi),
		HL:     NewSampleBuffer(rowHi, colLo),
		HH:     NewSampleBuffer(rowHi, colHi),
	}
	col := make([]float64, height)
	lo := make([]float64, colLo)
	hi := make([]float64, colHi)
	analyzeColumns(l, s.LL, s.LH, k, col, lo, hi, &bufs)
	analyzeColumns(h, s.HL, s.HH, k, col, lo, hi, &bufs)
	return s, nil
}

func analyzeColumns(src, lowOut, highOut *SampleBuffer, k *Kernel, col, lo, hi []float64, bufs *lineBufs) {
	for x := range src.width {
		src.column(x, col)
		forward1D(col, k, lo, hi, bufs)
		lowOut.setColumn(x, lo)
		highOut.setColumn(x, hi)
	}
}

// Inverse2D reconstructs the buffer a SubbandSet was computed from.
func Inverse2D(s *SubbandSet, k *Kernel) (*SampleBuffer, error) {
	if k == nil {
		return nil, fmt.Errorf("%w: nil kernel", ErrUnknownWavelet)
	}
	if err := s.check(k); err != nil {
		return nil, err
	}

	var bufs lineBufs
	bufs.ensure(max(s.Width, s.Height))

	// Vertical synthesis first (process columns)
	l := NewSampleBuffer(s.LL.width, s.Height)
	h := NewSampleBuffer(s.HL.width, s.Height)
	col := make([]float64, s.Height)
	lo := make([]float64, s.LL.height)
	hi := make([]float64, s.LH.height)
	synthesizeColumns(s.LL, s.LH, l, k, col, lo, hi, &bufs)
	synthesizeColumns(s.HL, s.HH, h, k, col, lo, hi, &bufs)

	// Horizontal synthesis second (process rows)
	out := NewSampleBuffer(s.Width, s.Height)
	for y := range s.Height {
		inverse1D(l.Row(y), h.Row(y), k, out.Row(y), &bufs)
	}
	return out, nil
}

func synthesizeColumns(lowIn, highIn, dst *SampleBuffer, k *Kernel, col, lo, hi []float64, bufs *lineBufs) {
	for x := range dst.width {
		lowIn.column(x, lo)
		highIn.column(x, hi)
		inverse1D(lo, hi, k, col, bufs)
		dst.setColumn(x, col)
	}
}

// check validates the subband geometry against the parent dimensions.
func (s *SubbandSet) check(k *Kernel) error {
	if s == nil || s.LL == nil || s.LH == nil || s.HL == nil || s.HH == nil {
		return fmt.Errorf("%w: missing subband", ErrDimensionMismatch)
	}
	if s.LL.width != s.LH.width || s.HL.width != s.HH.width ||
		s.LL.height != s.HL.height || s.LH.height != s.HH.height {
		return fmt.Errorf("%w: LL %dx%d, LH %dx%d, HL %dx%d, HH %dx%d", ErrDimensionMismatch,
			s.LL.width, s.LL.height, s.LH.width, s.LH.height,
			s.HL.width, s.HL.height, s.HH.width, s.HH.height)
	}
	if err := checkSplit(s.LL.width, s.HL.width, k, s.Width); err != nil {
		return fmt.Errorf("%w: width: %w", ErrDimensionMismatch, err)
	}
	if err := checkSplit(s.LL.height, s.LH.height, k, s.Height); err != nil {
		return fmt.Errorf("%w: height: %w", ErrDimensionMismatch, err)
	}
	return nil
}
