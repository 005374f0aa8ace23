package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-interp/matrix"
)

// ExampleSolve fits 1 + x + x² through (0,1), (1,3), (2,7).
func ExampleSolve() {
	s, err := matrix.NewLinearSystem([]float64{0, 1, 2}, []float64{1, 3, 7})
	if err != nil {
		fmt.Println(err)
		return
	}
	c, err := s.Solve()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", c)

	// Output:
	// [1.000 1.000 1.000]
}

// ExampleSolve_singular shows the explicit zero-pivot report.
func ExampleSolve_singular() {
	s, _ := matrix.NewLinearSystem([]float64{2, 2}, []float64{3, 5})
	_, err := s.Solve()
	fmt.Println(errors.Is(err, matrix.ErrSingular))

	// Output:
	// true
}
