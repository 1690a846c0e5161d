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
	"context"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Job is one raster submitted to TransformBatch.
type Job struct {
	Samples       []byte
	Width, Height int
}

// Result holds the output of one Job. Exactly one of Samples and Err is set.
type Result struct {
	Samples []byte
	Err     error
}

// TransformBatch runs independent jobs in parallel on a worker pool and
// returns one Result per job, in order. Each job owns its buffers, so no
// locking happens inside the transform. Jobs not yet started when ctx is
// done report ctx.Err().
func (p *Pipeline) TransformBatch(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	pool := workerpool.New(p.opts.workers)
	defer pool.Close()

	pool.ParallelForAtomic(len(jobs), func(i int) {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			return
		}
		job := jobs[i]
		out, err := p.TransformBytes(job.Samples, job.Width, job.Height)
		if err != nil {
			p.opts.logger.Debug("batch job failed", "job", i, "err", err)
			results[i].Err = err
			return
		}
		results[i].Samples = out
	})
	return results
}
