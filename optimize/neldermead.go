package optimize

import (
	"math"
	"sort"
)

// Standard Nelder-Mead coefficients.
const (
	nmReflect  = 1.0
	nmExpand   = 2.0
	nmContract = 0.5
	nmShrink   = 0.5
)

// nelderMead runs the downhill simplex search of Nelder and Mead.
func nelderMead(obj Objective, x0 []float64, cfg Config) (*Result, error) {
	n := len(x0)

	// Initial simplex: x0 plus one vertex per coordinate, perturbed by
	// 5% of the coordinate (or a small absolute step at zero).
	verts := make([][]float64, n+1)
	vals := make([]float64, n+1)
	verts[0] = append([]float64(nil), x0...)
	for i := 1; i <= n; i++ {
		v := append([]float64(nil), x0...)
		if v[i-1] != 0 {
			v[i-1] *= 1.05
		} else {
			v[i-1] = 0.00025
		}
		verts[i] = v
	}
	for i := range verts {
		vals[i] = obj.Eval(verts[i])
	}

	order := func() {
		idx := make([]int, n+1)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })
		nv := make([][]float64, n+1)
		nf := make([]float64, n+1)
		for i, j := range idx {
			nv[i] = verts[j]
			nf[i] = vals[j]
		}
		verts, vals = nv, nf
	}

	centroid := make([]float64, n)
	trial := make([]float64, n)

	for iter := 1; iter <= cfg.MaxIter; iter++ {
		order()

		// Converged when the value spread across the simplex collapses.
		spread := math.Abs(vals[n] - vals[0])
		if spread <= cfg.Tol*(math.Abs(vals[0])+cfg.Tol) {
			return &Result{
				X:          append([]float64(nil), verts[0]...),
				Value:      vals[0],
				Iterations: iter,
				Method:     NelderMead,
			}, nil
		}

		// Centroid of all vertices except the worst.
		for j := 0; j < n; j++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += verts[i][j]
			}
			centroid[j] = sum / float64(n)
		}

		// Reflection.
		for j := 0; j < n; j++ {
			trial[j] = centroid[j] + nmReflect*(centroid[j]-verts[n][j])
		}
		fr := obj.Eval(trial)

		switch {
		case fr < vals[0]:
			// Expansion.
			exp := make([]float64, n)
			for j := 0; j < n; j++ {
				exp[j] = centroid[j] + nmExpand*(trial[j]-centroid[j])
			}
			fe := obj.Eval(exp)
			if fe < fr {
				copy(verts[n], exp)
				vals[n] = fe
			} else {
				copy(verts[n], trial)
				vals[n] = fr
			}
		case fr < vals[n-1]:
			copy(verts[n], trial)
			vals[n] = fr
		default:
			// Contraction toward the better of reflected/worst.
			if fr < vals[n] {
				copy(verts[n], trial)
				vals[n] = fr
			}
			con := make([]float64, n)
			for j := 0; j < n; j++ {
				con[j] = centroid[j] + nmContract*(verts[n][j]-centroid[j])
			}
			fc := obj.Eval(con)
			if fc < vals[n] {
				copy(verts[n], con)
				vals[n] = fc
			} else {
				// Shrink all vertices toward the best.
				for i := 1; i <= n; i++ {
					for j := 0; j < n; j++ {
						verts[i][j] = verts[0][j] + nmShrink*(verts[i][j]-verts[0][j])
					}
					vals[i] = obj.Eval(verts[i])
				}
			}
		}
	}

	order()
	return nil, &ConvergenceError{
		Method:     NelderMead,
		Iterations: cfg.MaxIter,
		BestX:      append([]float64(nil), verts[0]...),
		BestValue:  vals[0],
	}
}
