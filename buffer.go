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

	"github.com/ajroetker/go-highway/hwy/contrib/algo"
)

// SampleBuffer is a row-major grid of float64 intensity samples.
// Its dimensions are fixed at construction; resizing means a new buffer.
type SampleBuffer struct {
	width, height int
	samples       []float64
}

// area returns width*height, or false when a dimension is negative or the
// product does not fit in an int.
func area(width, height int) (int, bool) {
	if width < 0 || height < 0 {
		return 0, false
	}
	if width != 0 && height > math.MaxInt/width {
		return 0, false
	}
	return width * height, true
}

// NewSampleBuffer returns a zeroed buffer of the given dimensions.
// Negative dimensions are treated as zero. It panics if width*height
// overflows int.
func NewSampleBuffer(width, height int) *SampleBuffer {
	width = max(width, 0)
	height = max(height, 0)
	n, ok := area(width, height)
	if !ok {
		panic(fmt.Sprintf("dwt: buffer dimensions %dx%d overflow", width, height))
	}
	return &SampleBuffer{
		width:   width,
		height:  height,
		samples: make([]float64, n),
	}
}

// NewUniformBuffer returns a buffer with every sample set to v.
func NewUniformBuffer(width, height int, v float64) *SampleBuffer {
	b := NewSampleBuffer(width, height)
	algo.Fill(b.samples, v)
	return b
}

// FromBytes builds a buffer from 8-bit row-major samples.
func FromBytes(width, height int, data []byte) (*SampleBuffer, error) {
	if n, ok := area(width, height); !ok || len(data) != n {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrSizeMismatch, len(data), width, height)
	}
	b := NewSampleBuffer(width, height)
	for i, v := range data {
		b.samples[i] = float64(v)
	}
	return b, nil
}

// FromSamples builds a buffer that takes ownership of samples.
func FromSamples(width, height int, samples []float64) (*SampleBuffer, error) {
	if n, ok := area(width, height); !ok || len(samples) != n {
		return nil, fmt.Errorf("%w: %d samples for %dx%d", ErrSizeMismatch, len(samples), width, height)
	}
	return &SampleBuffer{width: width, height: height, samples: samples}, nil
}

// Width returns the number of columns.
func (b *SampleBuffer) Width() int { return b.width }

// Height returns the number of rows.
func (b *SampleBuffer) Height() int { return b.height }

// Len returns width*height.
func (b *SampleBuffer) Len() int { return len(b.samples) }

// Samples returns the backing row-major slice. Writes are visible in b.
func (b *SampleBuffer) Samples() []float64 { return b.samples }

// Row returns row y as a subslice of the backing storage.
func (b *SampleBuffer) Row(y int) []float64 {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.samples[y*b.width : (y+1)*b.width]
}

// At returns the sample at column x, row y.
func (b *SampleBuffer) At(x, y int) (float64, error) {
	if !b.inBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	return b.samples[y*b.width+x], nil
}

// Set stores v at column x, row y.
func (b *SampleBuffer) Set(x, y int, v float64) error {
	if !b.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, b.width, b.height)
	}
	b.samples[y*b.width+x] = v
	return nil
}

func (b *SampleBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Clone returns a deep copy.
func (b *SampleBuffer) Clone() *SampleBuffer {
	c := NewSampleBuffer(b.width, b.height)
	copy(c.samples, b.samples)
	return c
}

// column copies column x into dst, which must hold b.height samples.
func (b *SampleBuffer) column(x int, dst []float64) {
	for y := range b.height {
		dst[y] = b.samples[y*b.width+x]
	}
}

// setColumn writes src into column x.
func (b *SampleBuffer) setColumn(x int, src []float64) {
	for y := range b.height {
		b.samples[y*b.width+x] = src[y]
	}
}

// Bytes clips and rounds every sample to 8 bits.
func (b *SampleBuffer) Bytes() []byte {
	out := make([]byte, len(b.samples))
	for i, v := range b.samples {
		out[i] = byte(ClipRound(v))
	}
	return out
}

// ClipRound clamps v to [0,255] and rounds half away from zero.
// NaN maps to 0. Applying it twice gives the same result as once.
func ClipRound(v float64) float64 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return math.Round(v)
}

// Energy returns the sum of squared samples.
func (b *SampleBuffer) Energy() float64 {
	var e float64
	for _, v := range b.samples {
		e += v * v
	}
	return e
}
