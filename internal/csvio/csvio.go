// Package csvio reads and writes the tabular files the formatter works
// on: delimiter sniffing, header preview and the row transform loop.
package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// sniffSampleSize is how much of the input is read when guessing the
// cell delimiter.
const sniffSampleSize = 8192

var delimiterCandidates = []rune{',', ';', '\t', '|'}

// SniffDelimiter guesses the cell delimiter of a tabular file from a
// sample of its content. The candidate that appears a consistent,
// positive number of times on every sampled line wins; ties go to the
// candidate with more occurrences per line. Falls back to a comma.
func SniffDelimiter(sample []byte) rune {
	lines := sampleLines(sample, 10)
	if len(lines) == 0 {
		return ','
	}

	best := ','
	bestCount := 0
	for _, cand := range delimiterCandidates {
		count := bytes.Count(lines[0], []byte(string(cand)))
		if count == 0 {
			continue
		}

		consistent := true
		for _, line := range lines[1:] {
			if bytes.Count(line, []byte(string(cand))) != count {
				consistent = false
				break
			}
		}
		if consistent && count > bestCount {
			best = cand
			bestCount = count
		}
	}
	return best
}

func sampleLines(sample []byte, max int) [][]byte {
	raw := bytes.Split(sample, []byte{'\n'})

	// The last chunk of the sample is likely a truncated line; only keep
	// it if it is the only one.
	if len(raw) > 1 {
		raw = raw[:len(raw)-1]
	}

	var lines [][]byte
	for _, line := range raw {
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) == 0 {
			continue
		}
		lines = append(lines, line)
		if len(lines) == max {
			break
		}
	}
	return lines
}

// ReadHeader returns the column headers of the file at path along with
// the sniffed cell delimiter, for previewing columns before a run.
func ReadHeader(path string) ([]string, rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ',', fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sample := make([]byte, sniffSampleSize)
	n, err := f.Read(sample)
	if err != nil && err != io.EOF {
		return nil, ',', fmt.Errorf("reading %s: %w", path, err)
	}
	delim := SniffDelimiter(sample[:n])

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, delim, err
	}

	r := csv.NewReader(f)
	r.Comma = delim
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, delim, fmt.Errorf("%s is empty", path)
	}
	if err != nil {
		return nil, delim, fmt.Errorf("reading header of %s: %w", path, err)
	}
	return header, delim, nil
}

// TransformFunc rewrites one record. The second return value reports
// whether the record was changed.
type TransformFunc func(rec []string, col int) ([]string, bool)

type Result struct {
	RowsProcessed int
	RowsModified  int
}

// Process copies tabular data from in to out, applying transform to the
// field at index col of every data row. The header row is written
// through verbatim. Rows with fewer fields than col are passed through
// unchanged. A col outside the header is a configuration error and
// nothing is written.
func Process(in io.Reader, out io.Writer, delim rune, col int, transform TransformFunc) (Result, error) {
	var res Result

	r := csv.NewReader(in)
	r.Comma = delim
	r.FieldsPerRecord = -1

	w := csv.NewWriter(out)
	w.Comma = delim

	header, err := r.Read()
	if err == io.EOF {
		return res, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return res, fmt.Errorf("reading header: %w", err)
	}

	if col < 0 || col >= len(header) {
		return res, fmt.Errorf("column index %d is out of range: the file has %d columns (indices 0-%d)",
			col, len(header), len(header)-1)
	}

	if err := w.Write(header); err != nil {
		return res, fmt.Errorf("writing header: %w", err)
	}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("reading row %d: %w", res.RowsProcessed+2, err)
		}

		res.RowsProcessed++

		rec, changed := transform(rec, col)
		if changed {
			res.RowsModified++
		}

		if err := w.Write(rec); err != nil {
			return res, fmt.Errorf("writing row %d: %w", res.RowsProcessed+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return res, fmt.Errorf("flushing output: %w", err)
	}
	return res, nil
}

// ProcessFile runs Process from inPath to a freshly created outPath.
// The output file is removed again if processing fails partway.
func ProcessFile(inPath, outPath string, delim rune, col int, transform TransformFunc) (Result, error) {
	in, err := os.Open(inPath)
	if err != nil {
		return Result{}, fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return Result{}, fmt.Errorf("creating %s: %w", outPath, err)
	}

	res, err := Process(in, out, delim, col, transform)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing %s: %w", outPath, cerr)
	}
	if err != nil {
		os.Remove(outPath)
		return res, err
	}
	return res, nil
}
