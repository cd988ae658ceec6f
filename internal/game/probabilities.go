package game

import "gonum.org/v1/gonum/mat"

// Probabilities returns, per square, the signed chance of finding a piece
// there: +1 certain player one, -1 certain player two. Squares never hold
// both sides across branches, so the sign always names a single owner.
func (q *QuantumBoard) Probabilities() *mat.Dense {
	sum := mat.NewDense(q.size, q.size, nil)
	branch := mat.NewDense(q.size, q.size, nil)
	for _, b := range q.branches {
		for y := 0; y < q.size; y++ {
			for x := 0; x < q.size; x++ {
				branch.Set(y, x, float64(b.At(x, y)))
			}
		}
		sum.Add(sum, branch)
	}
	sum.Scale(1/float64(len(q.branches)), sum)
	return sum
}
