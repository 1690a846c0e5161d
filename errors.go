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

import "errors"

var (
	ErrSizeMismatch      = errors.New("dwt: sample count does not match dimensions")
	ErrUnknownWavelet    = errors.New("dwt: unknown wavelet")
	ErrDimensionMismatch = errors.New("dwt: inconsistent subband dimensions")
	ErrLengthMismatch    = errors.New("dwt: inconsistent coefficient lengths")
	ErrOutOfBounds       = errors.New("dwt: sample index out of bounds")
	ErrInvalidPolicy     = errors.New("dwt: invalid compression policy")
)
