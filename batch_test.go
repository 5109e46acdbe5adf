package rs16

import "testing"

func TestBatchEncodeDecodeRoundTrip(t *testing.T) {
	c, err := Init(8, 0x11d, 0, 1, 16)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Free(c)

	length := 255
	dlen := length - c.Nroots()
	const njobs = 40

	originals := make([][]uint16, njobs)
	encJobs := make([]EncodeJob, njobs)
	for i := 0; i < njobs; i++ {
		data := make([]uint16, length)
		for j := 0; j < dlen; j++ {
			data[j] = uint16((j + i*3) & c.NN())
		}
		originals[i] = append([]uint16(nil), data...)
		encJobs[i] = EncodeJob{Data: data, Length: length, Stride: 1}
	}

	BatchEncode(c, encJobs)
	for i, job := range encJobs {
		if job.Err != nil {
			t.Fatalf("job %d: Encode error = %v", i, job.Err)
		}
		if !c.IsCodeword(job.Data, length, 1) {
			t.Fatalf("job %d: encoded output is not a codeword", i)
		}
	}

	decJobs := make([]DecodeJob, njobs)
	for i, job := range encJobs {
		corrupted := append([]uint16(nil), job.Data...)
		corrupted[i%length] ^= 0x2a
		decJobs[i] = DecodeJob{Data: corrupted, Length: length, Stride: 1}
	}

	BatchDecode(c, decJobs)
	for i, job := range decJobs {
		if job.Err != nil {
			t.Fatalf("job %d: Decode error = %v", i, job.Err)
		}
		if job.Corrected != 1 {
			t.Fatalf("job %d: Decode corrected %d symbols, want 1", i, job.Corrected)
		}
		for j := 0; j < dlen; j++ {
			if job.Data[j] != originals[i][j] {
				t.Fatalf("job %d: symbol %d not restored", i, j)
			}
		}
	}
}

func TestBatchWorkersBounded(t *testing.T) {
	if n := batchWorkers(0); n != 1 {
		t.Errorf("batchWorkers(0) = %d, want 1", n)
	}
	if n := batchWorkers(1); n != 1 {
		t.Errorf("batchWorkers(1) = %d, want 1", n)
	}
	if n := batchWorkers(1000); n < 1 {
		t.Errorf("batchWorkers(1000) = %d, want >= 1", n)
	}
	if n := batchWorkers(3); n > 3 {
		t.Errorf("batchWorkers(3) = %d, want <= 3", n)
	}
}
