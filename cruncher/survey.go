package cruncher

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// SurveyResult reports the size one general-purpose compressor produced
// from the SMOL-V bytes.
type SurveyResult struct {
	Algorithm      string
	CompressedSize int
	Err            error
}

// Survey compresses smolvBytes with zstd and lz4 concurrently and reports
// each compressor's output size; the SMOL-V size itself is not part of the
// result. It never
// mutates smolvBytes and never touches the decode path: it is purely an
// informational side report for cmd/spirvbench.
func Survey(smolvBytes []byte) []SurveyResult {
	algorithms := []struct {
		name string
		run  func([]byte) (int, error)
	}{
		{"zstd", compressZSTD},
		{"lz4", compressLZ4},
	}

	results := make([]SurveyResult, len(algorithms))
	var wg sync.WaitGroup
	for i, a := range algorithms {
		wg.Add(1)
		go func(i int, name string, run func([]byte) (int, error)) {
			defer wg.Done()
			n, err := run(smolvBytes)
			results[i] = SurveyResult{Algorithm: name, CompressedSize: n, Err: err}
		}(i, a.name, a.run)
	}
	wg.Wait()
	return results
}

func compressZSTD(data []byte) (int, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return 0, fmt.Errorf("zstd: %w", err)
	}
	defer enc.Close()
	return len(enc.EncodeAll(data, nil)), nil
}

func compressLZ4(data []byte) (int, error) {
	bound := lz4.CompressBlockBound(len(data))
	dst := make([]byte, bound)
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return 0, fmt.Errorf("lz4: %w", err)
	}
	if n == 0 {
		return len(data), nil // incompressible, lz4 stored it verbatim conceptually
	}
	return n, nil
}
