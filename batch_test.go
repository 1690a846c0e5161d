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
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestTransformBatch_MatchesSequential(t *testing.T) {
	p, err := NewPipeline(CompressionPolicy{Wavelet: "db2", Mode: Soft, Threshold: 15, Levels: 2}, WithWorkers(4))
	if err != nil {
		t.Fatal(err)
	}
	var jobs []Job
	for i := range 12 {
		w, h := 8+i, 5+2*i
		jobs = append(jobs, Job{Samples: noiseBytes(w*h, uint64(i)), Width: w, Height: h})
	}

	results := p.TransformBatch(context.Background(), jobs)
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	for i, job := range jobs {
		want, err := p.TransformBytes(job.Samples, job.Width, job.Height)
		if err != nil {
			t.Fatal(err)
		}
		if results[i].Err != nil {
			t.Errorf("job %d: %v", i, results[i].Err)
			continue
		}
		if !bytes.Equal(results[i].Samples, want) {
			t.Errorf("job %d: batch output differs from sequential run", i)
		}
	}
}

func TestTransformBatch_PerJobErrors(t *testing.T) {
	p, err := NewPipeline(DefaultPolicy(), WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	jobs := []Job{
		{Samples: make([]byte, 16), Width: 4, Height: 4},
		{Samples: make([]byte, 3), Width: 4, Height: 4},
		{Samples: make([]byte, 9), Width: 3, Height: 3},
	}
	results := p.TransformBatch(context.Background(), jobs)
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("valid jobs failed: %v, %v", results[0].Err, results[2].Err)
	}
	if !errors.Is(results[1].Err, ErrSizeMismatch) {
		t.Errorf("job 1 err = %v, want ErrSizeMismatch", results[1].Err)
	}
	if results[1].Samples != nil {
		t.Error("failed job returned samples")
	}
}

func TestTransformBatch_CanceledContext(t *testing.T) {
	p, err := NewPipeline(DefaultPolicy())
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := p.TransformBatch(ctx, []Job{
		{Samples: make([]byte, 4), Width: 2, Height: 2},
		{Samples: make([]byte, 4), Width: 2, Height: 2},
	})
	for i, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("job %d err = %v, want context.Canceled", i, r.Err)
		}
	}
}

func TestTransformBatch_Empty(t *testing.T) {
	p, _ := NewPipeline(DefaultPolicy())
	if got := p.TransformBatch(context.Background(), nil); len(got) != 0 {
		t.Errorf("got %d results for no jobs", len(got))
	}
}
