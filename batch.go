// The MIT License (MIT)
//
// Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package rs16

import (
	"sync"

	"github.com/klauspost/cpuid"
)

// EncodeJob is one unit of work for BatchEncode: encode Data in place (or
// scatter parity per Stride, same rules as Code.Encode) and report any
// error back through Err.
type EncodeJob struct {
	Data   []uint16
	Length int
	Stride int
	Err    error
}

// DecodeJob is one unit of work for BatchDecode: correct Data in place and
// report the corrected position count (or a failure) back through
// Corrected/Err.
type DecodeJob struct {
	Data      []uint16
	Length    int
	Stride    int
	Eras      []int
	ErrPos    *[]int
	Corrected int
	Err       error
}

// batchWorkers picks a goroutine count for fanning jobs independent work
// items out across the host, capped at one per job and floored at 1 on a
// single-threaded host.
func batchWorkers(jobs int) int {
	if jobs <= 1 {
		return 1
	}

	n := cpuid.CPU.PhysicalCores
	if n < 1 {
		n = 1
	}
	if cpuid.CPU.ThreadsPerCore > 1 {
		n *= cpuid.CPU.ThreadsPerCore
	}
	if n > jobs {
		n = jobs
	}
	return n
}

// BatchEncode runs Code.Encode for every job against the same, shared, and
// unmodified *Code, across a bounded worker pool sized to the host. It
// returns once every job has completed; each job's Err field reports its
// own outcome independently of the others.
func BatchEncode(c *Code, jobs []EncodeJob) {
	workers := batchWorkers(len(jobs))
	if workers <= 1 {
		for i := range jobs {
			jobs[i].Err = c.Encode(jobs[i].Data, jobs[i].Length, jobs[i].Stride)
		}
		return
	}

	var wg sync.WaitGroup
	ch := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range ch {
				jobs[i].Err = c.Encode(jobs[i].Data, jobs[i].Length, jobs[i].Stride)
			}
		}()
	}
	for i := range jobs {
		ch <- i
	}
	close(ch)
	wg.Wait()
}

// BatchDecode runs Code.Decode for every job against the same, shared, and
// unmodified *Code, across a bounded worker pool sized to the host. It
// returns once every job has completed; each job's Corrected/Err fields
// report its own outcome independently of the others.
func BatchDecode(c *Code, jobs []DecodeJob) {
	workers := batchWorkers(len(jobs))
	if workers <= 1 {
		for i := range jobs {
			jobs[i].Corrected, jobs[i].Err = c.Decode(jobs[i].Data, jobs[i].Length, jobs[i].Stride, jobs[i].Eras, jobs[i].ErrPos)
		}
		return
	}

	var wg sync.WaitGroup
	ch := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range ch {
				jobs[i].Corrected, jobs[i].Err = c.Decode(jobs[i].Data, jobs[i].Length, jobs[i].Stride, jobs[i].Eras, jobs[i].ErrPos)
			}
		}()
	}
	for i := range jobs {
		ch <- i
	}
	close(ch)
	wg.Wait()
}
