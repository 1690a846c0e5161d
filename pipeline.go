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
	"io"
	"log/slog"
	"runtime"
)

// MaxLevels returns the number of decomposition levels that fit a
// width x height buffer: each level halves both dimensions (rounding up)
// until the smaller one reaches 1.
func MaxLevels(width, height int) int {
	levels := 0
	for d := min(width, height); d > 1; d = (d + 1) / 2 {
		levels++
	}
	return levels
}

// LevelStack holds a multi-level decomposition, outermost level first.
// The approximation of the innermost level is kept separately: outer LL
// subbands are rebuilt during reconstruction and never read.
type LevelStack struct {
	sets   []*SubbandSet
	approx *SampleBuffer
}

// Decompose applies Forward2D levels times, each level operating on the LL
// subband of the previous one. levels is clamped to MaxLevels.
func Decompose(b *SampleBuffer, k *Kernel, levels int) (*LevelStack, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrSizeMismatch)
	}
	levels = min(max(levels, 0), MaxLevels(b.width, b.height))
	st := &LevelStack{sets: make([]*SubbandSet, 0, levels)}
	cur := b
	for range levels {
		s, err := Forward2D(cur, k)
		if err != nil {
			return nil, err
		}
		st.sets = append(st.sets, s)
		cur = s.LL
	}
	if levels == 0 {
		cur = b.Clone()
	}
	st.approx = cur
	return st, nil
}

// Len returns the number of decomposition levels held.
func (st *LevelStack) Len() int { return len(st.sets) }

// Level returns the SubbandSet at index i, 0 being the outermost level.
func (st *LevelStack) Level(i int) *SubbandSet {
	if i < 0 || i >= len(st.sets) {
		return nil
	}
	return st.sets[i]
}

// Approximation returns the innermost LL subband.
func (st *LevelStack) Approximation() *SampleBuffer { return st.approx }

// Process applies policy to every detail subband at every level and to the
// innermost LL subband. With no decomposition levels there are no
// coefficients and Process does nothing.
func (st *LevelStack) Process(policy CompressionPolicy) {
	if len(st.sets) == 0 {
		return
	}
	for i, s := range st.sets {
		level := i + 1
		for _, band := range [...]Band{BandLH, BandHL, BandHH} {
			s.setBand(band, ProcessSubband(s.Band(band), band, level, policy))
		}
	}
	st.approx = ProcessSubband(st.approx, BandLL, len(st.sets), policy)
	st.sets[len(st.sets)-1].LL = st.approx
}

// Reconstruct pops levels innermost first, applying Inverse2D until the
// top-level buffer is rebuilt. The stack is consumed; on error no partial
// output is returned.
func (st *LevelStack) Reconstruct(k *Kernel) (*SampleBuffer, error) {
	cur := st.approx
	for i := len(st.sets) - 1; i >= 0; i-- {
		s := st.sets[i]
		s.LL = cur
		out, err := Inverse2D(s, k)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
		cur = out
		st.sets[i] = nil
		st.sets = st.sets[:i]
	}
	st.approx = cur
	return cur, nil
}

// Option configures a Pipeline.
type Option func(*pipelineOptions)

type pipelineOptions struct {
	logger  *slog.Logger
	workers int
}

func defaultPipelineOptions() *pipelineOptions {
	return &pipelineOptions{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		workers: runtime.GOMAXPROCS(0),
	}
}

// WithLogger routes debug records about level geometry to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *pipelineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithWorkers sets the worker count used by TransformBatch.
// Values <= 0 keep the default of GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *pipelineOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Pipeline runs decompose, process and reconstruct for a fixed policy.
// A Pipeline holds no per-invocation state and is safe for concurrent use.
type Pipeline struct {
	policy CompressionPolicy
	kernel *Kernel
	opts   pipelineOptions
}

// NewPipeline validates policy and resolves its kernel.
func NewPipeline(policy CompressionPolicy, opts ...Option) (*Pipeline, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	k, err := KernelFor(policy.wavelet())
	if err != nil {
		return nil, err
	}
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Pipeline{policy: policy, kernel: k, opts: *o}, nil
}

// Policy returns the policy the pipeline was built with.
func (p *Pipeline) Policy() CompressionPolicy { return p.policy }

// Kernel returns the resolved wavelet kernel.
func (p *Pipeline) Kernel() *Kernel { return p.kernel }

// Run transforms in and returns a new buffer of the same dimensions with
// every sample clipped to [0,255] and rounded. in is not modified.
func (p *Pipeline) Run(in *SampleBuffer) (*SampleBuffer, error) {
	out, err := p.reconstruct(in)
	if err != nil {
		return nil, err
	}
	for i, v := range out.samples {
		out.samples[i] = ClipRound(v)
	}
	return out, nil
}

// reconstruct runs the three pipeline stages without the final clipping.
func (p *Pipeline) reconstruct(in *SampleBuffer) (*SampleBuffer, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrSizeMismatch)
	}
	log := p.opts.logger
	if maxLevels := MaxLevels(in.width, in.height); p.policy.Levels > maxLevels {
		log.Debug("clamping decomposition levels",
			"requested", p.policy.Levels, "max", maxLevels,
			"width", in.width, "height", in.height)
	}

	st, err := Decompose(in, p.kernel, p.policy.Levels)
	if err != nil {
		return nil, err
	}
	for i := range st.Len() {
		s := st.Level(i)
		log.Debug("decomposed level",
			"level", i+1, "kernel", p.kernel.name,
			"parent", fmt.Sprintf("%dx%d", s.Width, s.Height),
			"ll", fmt.Sprintf("%dx%d", s.LL.width, s.LL.height))
	}

	st.Process(p.policy)

	out, err := st.Reconstruct(p.kernel)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TransformBytes runs the pipeline over 8-bit row-major samples.
func (p *Pipeline) TransformBytes(samples []byte, width, height int) ([]byte, error) {
	in, err := FromBytes(width, height, samples)
	if err != nil {
		return nil, err
	}
	out, err := p.Run(in)
	if err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Transform compresses an 8-bit grayscale raster with policy and returns
// the reconstructed raster, row-major, of the same dimensions.
func Transform(samples []byte, width, height int, policy CompressionPolicy) ([]byte, error) {
	p, err := NewPipeline(policy)
	if err != nil {
		return nil, err
	}
	return p.TransformBytes(samples, width, height)
}
