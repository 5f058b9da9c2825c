// Package dataset provides the data structures the estimators consume:
// univariate samples and regression design matrices.
//
// # Samples
//
// A Sample wraps a slice of observations and provides the usual
// descriptive statistics:
//
//	s := dataset.NewSample(values)
//	fmt.Printf("n=%d mean=%.3f sd=%.3f\n", s.Len(), s.Mean(), s.Std())
//
// # Design Matrices
//
// A Design assembles covariate columns in a fixed order. The column
// order defines the order of the coefficient vector returned by the
// estimators:
//
//	d := dataset.NewDesign(n)
//	d.AddIntercept()
//	d.AddCentered("age", ages)
//	d.AddCenteredSquared("age_sq", ages)
//	d.AddColumn("customer", customerFlags)
//	d.AddDummies("region", regions, "north")  // north is the reference
//	X := d.Matrix()
//
// Categorical variables use reference-category encoding: one indicator
// column per label with one label dropped, so the dummies are not
// collinear with the intercept.
//
// The package assumes rows are fully populated; excluding records with
// missing values is the caller's responsibility before assembly.
package dataset
