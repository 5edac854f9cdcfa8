// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the text codec.
package sparse_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestEncodeFormat pins the exact on-disk layout.
func TestEncodeFormat(t *testing.T) {
	m := mustZeros(t, 3, 3)
	mustSet(t, m, 1, 2, 0.5)
	mustSet(t, m, 1, 0, -3)

	var buf bytes.Buffer
	require.NoError(t, m.Encode(&buf))
	require.Equal(t, "# lvsparse csr\n3 3 2\n1 2 0.5\n1 0 -3\n", buf.String())
}

// TestSaveLoadRoundTrip verifies Save followed by Load yields an Equal matrix.
func TestSaveLoadRoundTrip(t *testing.T) {
	m := mustZeros(t, 9, 7)
	fillSparseRand(t, m, 0.35, 123)
	path := filepath.Join(t.TempDir(), "m.csr")

	require.NoError(t, m.Save(path))

	var got sparse.Matrix[float64]
	require.NoError(t, got.Load(path))
	require.True(t, got.Equal(m)) // structural, storage order preserved
}

// TestTextMarshalerRoundTrip covers MarshalText/UnmarshalText with integers.
func TestTextMarshalerRoundTrip(t *testing.T) {
	m, err := sparse.NewZeros[int32](2, 4)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 3, -2147483648))
	require.NoError(t, m.Set(1, 1, 7))

	text, err := m.MarshalText()
	require.NoError(t, err)

	got, err := sparse.NewZeros[int32](1, 1)
	require.NoError(t, err)
	require.NoError(t, got.UnmarshalText(text))
	require.True(t, got.Equal(m))
}

// TestDecodeReplacesShape ensures Decode replaces the full content, shape included.
func TestDecodeReplacesShape(t *testing.T) {
	m := mustZeros(t, 5, 5)
	fillSparseRand(t, m, 0.5, 1)

	require.NoError(t, m.Decode(strings.NewReader("# c\n\n2 1 1\n1 0 4\n")))
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 1, m.Cols())
	require.Equal(t, []float64{4}, m.Values())
}

// TestDecodeKeepsPolicy ensures the receiver's numeric policy survives Decode.
func TestDecodeKeepsPolicy(t *testing.T) {
	m := mustZeros(t, 1, 1, sparse.WithEpsilon(0.5))
	require.NoError(t, m.Decode(strings.NewReader("1 2 2\n0 0 0.25\n0 1 3\n")))
	require.Equal(t, 1, m.NNZ()) // 0.25 <= eps is not stored
	require.Equal(t, 0.5, m.Options().Epsilon())
}

// TestDecodeErrorsAreAtomic covers malformed input; the receiver never changes.
func TestDecodeErrorsAreAtomic(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", sparse.ErrParse},
		{"only comments", "# lvsparse csr\n", sparse.ErrParse},
		{"short header", "3 3\n", sparse.ErrParse},
		{"negative header", "-1 3 0\n", sparse.ErrParse},
		{"bad number", "2 2 1\n0 x 1\n", sparse.ErrParse},
		{"bad value", "2 2 1\n0 0 one\n", sparse.ErrParse},
		{"too few entries", "2 2 2\n0 0 1\n", sparse.ErrParse},
		{"too many entries", "2 2 1\n0 0 1\n1 1 1\n", sparse.ErrParse},
		{"duplicate", "2 2 2\n0 0 1\n0 0 2\n", sparse.ErrParse},
		{"out of range", "2 2 1\n2 0 1\n", sparse.ErrOutOfRange},
		{"non-finite", "2 2 1\n0 0 NaN\n", sparse.ErrNaNInf},
		{"explicit zero", "2 2 1\n0 0 0\n", sparse.ErrParse},
		{"max int rows", "9223372036854775807 1 0\n", sparse.ErrParse},
		{"2^62 rows", "4611686018427387904 1 0\n", sparse.ErrParse},
		{"rows above limit", fmt.Sprintf("%d 1 0\n", sparse.MaxDecodeRows+1), sparse.ErrParse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := scenario3x3(t)
			want := m.Clone()

			err := m.Decode(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
			require.True(t, m.Equal(want)) // untouched
		})
	}
}

// TestDecodeIntegerOverflow rejects values that do not fit the element type.
func TestDecodeIntegerOverflow(t *testing.T) {
	m, err := sparse.NewZeros[int8](1, 1)
	require.NoError(t, err)
	err = m.Decode(strings.NewReader("1 1 1\n0 0 300\n"))
	require.ErrorIs(t, err, sparse.ErrParse)
}

// TestLoadMissingFile surfaces the os error and leaves the matrix unchanged.
func TestLoadMissingFile(t *testing.T) {
	m := scenario3x3(t)
	err := m.Load(filepath.Join(t.TempDir(), "absent.csr"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Equal(t, 2, m.NNZ())
}
