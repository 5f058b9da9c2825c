package dataset

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Design assembles a regression design matrix column by column.
// Column order is the order of the Add calls and matches the
// coefficient vector returned by the estimators.
type Design struct {
	nRows int
	names []string
	cols  [][]float64
}

// NewDesign creates an empty design matrix for n observations.
func NewDesign(n int) *Design {
	return &Design{nRows: n}
}

// NumRows returns the number of observations.
func (d *Design) NumRows() int {
	return d.nRows
}

// NumCols returns the number of covariates added so far.
func (d *Design) NumCols() int {
	return len(d.cols)
}

// Columns returns the covariate names in column order.
func (d *Design) Columns() []string {
	names := make([]string, len(d.names))
	copy(names, d.names)
	return names
}

// AddIntercept appends a column of ones named "intercept".
func (d *Design) AddIntercept() *Design {
	ones := make([]float64, d.nRows)
	for i := range ones {
		ones[i] = 1
	}
	d.names = append(d.names, "intercept")
	d.cols = append(d.cols, ones)
	return d
}

// AddColumn appends a covariate column. It returns an error if the
// number of values does not match the number of observations.
func (d *Design) AddColumn(name string, values []float64) error {
	if len(values) != d.nRows {
		return fmt.Errorf("column %q has %d values, design has %d rows", name, len(values), d.nRows)
	}
	col := make([]float64, d.nRows)
	copy(col, values)
	d.names = append(d.names, name)
	d.cols = append(d.cols, col)
	return nil
}

// AddCentered appends a covariate with its sample mean subtracted.
// Centering keeps the intercept interpretable and tames the scale of
// polynomial terms.
func (d *Design) AddCentered(name string, values []float64) error {
	if len(values) != d.nRows {
		return fmt.Errorf("column %q has %d values, design has %d rows", name, len(values), d.nRows)
	}
	mean := NewSample(values).Mean()
	col := make([]float64, d.nRows)
	for i, v := range values {
		col[i] = v - mean
	}
	d.names = append(d.names, name)
	d.cols = append(d.cols, col)
	return nil
}

// AddCenteredSquared appends the square of the centered covariate,
// capturing a concave or convex effect of the variable.
func (d *Design) AddCenteredSquared(name string, values []float64) error {
	if len(values) != d.nRows {
		return fmt.Errorf("column %q has %d values, design has %d rows", name, len(values), d.nRows)
	}
	mean := NewSample(values).Mean()
	col := make([]float64, d.nRows)
	for i, v := range values {
		c := v - mean
		col[i] = c * c
	}
	d.names = append(d.names, name)
	d.cols = append(d.cols, col)
	return nil
}

// AddDummies appends one indicator column per distinct label except the
// reference label, which is dropped to avoid collinearity with the
// intercept. Columns are named name_label and added in sorted label
// order so the layout is deterministic. It returns an error if the
// reference label never occurs in the data.
func (d *Design) AddDummies(name string, labels []string, reference string) error {
	if len(labels) != d.nRows {
		return fmt.Errorf("column %q has %d labels, design has %d rows", name, len(labels), d.nRows)
	}
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		seen[l] = true
	}
	if !seen[reference] {
		return fmt.Errorf("reference label %q for column %q not present in data", reference, name)
	}
	distinct := make([]string, 0, len(seen))
	for l := range seen {
		if l != reference {
			distinct = append(distinct, l)
		}
	}
	sort.Strings(distinct)

	for _, l := range distinct {
		col := make([]float64, d.nRows)
		for i, v := range labels {
			if v == l {
				col[i] = 1
			}
		}
		d.names = append(d.names, name+"_"+l)
		d.cols = append(d.cols, col)
	}
	return nil
}

// Matrix returns the assembled design as a dense matrix with one row
// per observation and one column per covariate.
func (d *Design) Matrix() *mat.Dense {
	if len(d.cols) == 0 {
		return nil
	}
	m := mat.NewDense(d.nRows, len(d.cols), nil)
	for j, col := range d.cols {
		for i, v := range col {
			m.Set(i, j, v)
		}
	}
	return m
}
