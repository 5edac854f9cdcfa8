// SPDX-License-Identifier: MIT

// Package sparse - line-oriented text codec.
//
// Format (UTF-8; blank lines and lines starting with '#' are ignored):
//
//	# lvsparse csr
//	<rows> <cols> <nnz>
//	<row> <col> <value>     (nnz lines)
//
// Entries are written row by row in storage order. Decode replays them through
// Set on a fresh matrix, which appends each entry at the end of its row, so the
// decoded arrays are identical to the encoded ones: Save followed by Load
// yields a matrix that is Equal (structurally) to the source.
//
// Encode never writes a zero, so an entry of 0 is malformed. Non-zero values
// at or below the receiver's eps are legal and dropped by Set; they still
// count toward nnz, which lets a file be read under a coarser threshold.
//
// Integer element types are written in base 10; floating-point types with the
// shortest representation that parses back to the same float64.

package sparse

import (
	"bufio"
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	codecHeader      = "# lvsparse csr"
	codecCommentMark = "#"
	maxPrealloc      = 1 << 16 // cap on capacity reserved from an untrusted header
)

// MaxDecodeRows is the largest row count Decode accepts from a header.
// Row storage is allocated up front, so larger headers are rejected with
// ErrParse instead of exhausting memory.
const MaxDecodeRows = 1 << 24

// Compile-time assertions for the encoding interfaces used by package store.
var (
	_ encoding.TextMarshaler   = (*Matrix[float64])(nil)
	_ encoding.TextUnmarshaler = (*Matrix[float64])(nil)
)

// formatValue renders v so that parseValue returns exactly v.
func formatValue[T Number](v T) string {
	if isIntegral[T]() {
		return strconv.FormatInt(int64(v), 10)
	}

	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

// parseValue parses s into T, rejecting integers that do not fit T.
func parseValue[T Number](s string) (T, error) {
	if isIntegral[T]() {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		if int64(T(n)) != n {
			return 0, fmt.Errorf("value %d overflows element type", n)
		}

		return T(n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}

	return T(f), nil
}

// Encode writes m to w in the text format.
// Complexity: O(rows + nnz).
func (m *Matrix[T]) Encode(w io.Writer) error {
	if m == nil {
		return matrixErrorf("Encode", ErrNilMatrix)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, codecHeader)
	fmt.Fprintf(bw, "%d %d %d\n", m.rows, m.cols, len(m.values))
	var i, k int
	for i = 0; i < m.rows; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			fmt.Fprintf(bw, "%d %d %s\n", i, m.colIdx[k], formatValue(m.values[k]))
		}
	}
	if err := bw.Flush(); err != nil {
		return matrixErrorf("Encode", err)
	}

	return nil
}

// Decode replaces the full content of m (shape included) with the matrix read
// from r. The receiver keeps its numeric policy (a zero-value receiver gets
// the defaults).
// Implementation:
//   - Stage 1: parse the "<rows> <cols> <nnz>" header.
//   - Stage 2: replay nnz entries through Set on a fresh matrix.
//   - Stage 3: validate the fresh matrix (Check), then swap it into m.
//
// Behavior highlights:
//   - Atomic: on any error m is left exactly as it was.
//
// Errors:
//   - ErrParse (malformed header/entry, duplicate coordinate, wrong entry count,
//     more than MaxDecodeRows rows, an explicit zero entry),
//     ErrOutOfRange (coordinate outside the header shape), ErrNaNInf.
//
// Complexity:
//   - Time O(nnz·(w + nnz)) worst case through Set; Space O(nnz).
func (m *Matrix[T]) Decode(r io.Reader) error {
	if m == nil {
		return matrixErrorf(opDecode, ErrNilMatrix)
	}
	m.lazyInit()

	sc := bufio.NewScanner(r)
	var (
		line   int
		fresh  *Matrix[T]
		nnz    int
		loaded int
	)
	parseErr := func(format string, args ...any) error {
		return matrixErrorf(opDecode, fmt.Errorf("line %d: %w: %s", line, ErrParse, fmt.Sprintf(format, args...)))
	}
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, codecCommentMark) {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return parseErr("want 3 fields, got %d", len(fields))
		}

		if fresh == nil {
			dims, err := parseInts(fields)
			if err != nil {
				return parseErr("header: %v", err)
			}
			if dims[0] < 0 || dims[1] < 0 || dims[2] < 0 {
				return parseErr("header: negative size %v", dims)
			}
			if dims[0] > MaxDecodeRows {
				return parseErr("header: %d rows exceeds limit %d", dims[0], MaxDecodeRows)
			}
			fresh = newMatrix[T](dims[0], dims[1], m.opts)
			nnz = dims[2]
			fresh.colIdx = make([]int, 0, min(nnz, maxPrealloc))
			fresh.values = make([]T, 0, min(nnz, maxPrealloc))
			continue
		}

		coords, err := parseInts(fields[:2])
		if err != nil {
			return parseErr("entry: %v", err)
		}
		v, err := parseValue[T](fields[2])
		if err != nil {
			return parseErr("value %q: %v", fields[2], err)
		}
		if loaded == nnz {
			return parseErr("more than %d entries", nnz)
		}
		i, j := coords[0], coords[1]
		if fresh.checkIndex(opDecode, i, j) == nil && fresh.find(i, j) >= 0 {
			return parseErr("duplicate entry (%d,%d)", i, j)
		}
		if v == 0 {
			return parseErr("explicit zero entry (%d,%d)", i, j)
		}
		if err = fresh.Set(i, j, v); err != nil {
			return matrixErrorf(opDecode, fmt.Errorf("line %d: %w", line, err))
		}
		loaded++
	}
	if err := sc.Err(); err != nil {
		return matrixErrorf(opDecode, err)
	}
	if fresh == nil {
		return matrixErrorf(opDecode, fmt.Errorf("%w: missing header", ErrParse))
	}
	if loaded != nnz {
		return matrixErrorf(opDecode, fmt.Errorf("%w: got %d entries, header declares %d", ErrParse, loaded, nnz))
	}
	if err := fresh.Check(); err != nil {
		return matrixErrorf(opDecode, err)
	}

	*m = *fresh

	return nil
}

// parseInts converts every field to a base-10 int.
func parseInts(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for idx, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[idx] = n
	}

	return out, nil
}

// MarshalText implements encoding.TextMarshaler using Encode.
func (m *Matrix[T]) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := m.Encode(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Decode.
func (m *Matrix[T]) UnmarshalText(text []byte) error {
	return m.Decode(bytes.NewReader(text))
}

// Save writes m to the file at path (created or truncated).
func (m *Matrix[T]) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return matrixErrorf("Save", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return m.Encode(f)
}

// Load replaces the full content of m with the matrix stored at path.
// On error m is unchanged.
func (m *Matrix[T]) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return matrixErrorf("Load", err)
	}
	defer f.Close()

	return m.Decode(f)
}
