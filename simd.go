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
	"github.com/ajroetker/go-highway/hwy/contrib/image"
)

// Image converts b to a SIMD-aligned go-highway image.
// The returned image shares no data with b; it's a copy.
func (b *SampleBuffer) Image() *image.Image[float64] {
	img := image.NewImage[float64](b.width, b.height)
	for y := range img.Height() {
		copy(img.Row(y)[:b.width], b.Row(y))
	}
	return img
}

// FromImage converts a go-highway image to a SampleBuffer, dropping row
// padding. The returned buffer shares no data with img; it's a copy.
func FromImage(img *image.Image[float64]) *SampleBuffer {
	if img == nil {
		return NewSampleBuffer(0, 0)
	}
	b := NewSampleBuffer(img.Width(), img.Height())
	for y := range b.height {
		copy(b.Row(y), img.Row(y)[:b.width])
	}
	return b
}
