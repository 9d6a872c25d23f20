// Package polyhedral computes exact rational polyhedral cones.
//
// A Cone is built from a finite list of generators in Q^n. New runs the
// double description method on the dual cone to obtain the support
// hyperplanes (inward normals a with a·x >= 0), then reads the extreme rays
// off the generators. All vectors are kept in primitive integer form, so two
// rays are equal exactly when they span the same half-line.
//
// Usage:
//
//	c, err := polyhedral.New(vectors)
//	if err != nil {
//	  // ErrNotFullDimensional, ErrNoGenerators, ...
//	}
//	pos, _ := c.Locate(x) // Interior, Boundary or Outside
//
// IncircleRadius lifts a point set to a cone and returns the distance from
// the origin to the nearest facet of its convex hull.
//
// Only full-dimensional cones are supported. Heegner functionals always span
// the dual space once enough of them are enumerated, and a smaller generator
// set is reported as ErrNotFullDimensional rather than silently projected.
package polyhedral
