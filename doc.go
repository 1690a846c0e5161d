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

// Package dwt implements a wavelet compression core for 8-bit grayscale
// rasters.
//
// A raster is decomposed with a multi-level separable 2D discrete wavelet
// transform, its coefficients are thresholded (and optionally quantized),
// and the image is rebuilt with the inverse transform. Output samples are
// clipped to [0,255] and rounded, so the result has the same dimensions and
// sample format as the input.
//
// Compressing a raster:
//
//	out, err := dwt.Transform(pix, width, height, dwt.DefaultPolicy())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Reusing a pipeline across many rasters:
//
//	p, err := dwt.NewPipeline(dwt.CompressionPolicy{
//	    Wavelet:   "db2",
//	    Mode:      dwt.Soft,
//	    Threshold: 12,
//	    Levels:    3,
//	    RetainLL:  true,
//	})
//	results := p.TransformBatch(ctx, jobs)
//
// Supported wavelets are Haar, Daubechies 4 and 6 tap (db2, db3), applied as
// orthogonal filter banks with periodic boundary extension, and CDF 9/7,
// evaluated with the lifting scheme. Without thresholding every kernel
// reconstructs its input to within floating-point rounding.
package dwt
