package sparse_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
)

// ExampleMatrix_Set builds a small matrix entry by entry and shows its
// compressed-row arrays.
func ExampleMatrix_Set() {
	m, _ := sparse.NewZeros[float64](3, 3)
	_ = m.Set(1, 0, 1)
	_ = m.Set(1, 2, 1)

	fmt.Println("nnz:", m.NNZ())
	fmt.Println("rowPtr:", m.RowPtr())
	fmt.Println("colIdx:", m.ColIdx())

	_ = m.Set(1, 0, 0) // writing zero removes the entry
	fmt.Println("nnz after removal:", m.NNZ())

	// Output:
	// nnz: 2
	// rowPtr: [0 0 2 2]
	// colIdx: [0 2]
	// nnz after removal: 1
}

// ExampleMulVec multiplies a sparse matrix by a dense vector.
func ExampleMulVec() {
	m, _ := sparse.NewFromDense([][]int{
		{0, 0, 0},
		{1, 0, 1},
		{0, 0, 0},
	}, 3, 3)

	y, _ := sparse.MulVec(m, []int{1, 1, 1})
	fmt.Println(y)

	// Output:
	// [0 2 0]
}

// ExampleMatrix_Encode writes the text form of a matrix.
func ExampleMatrix_Encode() {
	m, _ := sparse.NewIdentity[int](2)
	var sb strings.Builder
	_ = m.Encode(&sb)
	fmt.Print(sb.String())

	// Output:
	// # lvsparse csr
	// 2 2 2
	// 0 0 1
	// 1 1 1
}
