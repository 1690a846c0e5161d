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
	"image"
)

// FromGray copies the pixels of img into a new buffer.
// A nil image yields an empty buffer.
func FromGray(img *image.Gray) *SampleBuffer {
	if img == nil {
		return NewSampleBuffer(0, 0)
	}
	r := img.Bounds()
	b := NewSampleBuffer(r.Dx(), r.Dy())
	for y := range b.height {
		off := img.PixOffset(r.Min.X, r.Min.Y+y)
		row := b.Row(y)
		for x, v := range img.Pix[off : off+b.width] {
			row[x] = float64(v)
		}
	}
	return b
}

// Gray returns b as an 8-bit image, clipping and rounding each sample.
func (b *SampleBuffer) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.Bytes())
	return img
}
