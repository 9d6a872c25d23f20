// Package heegner computes cones of Heegner divisors: the convex cone in
// the dual of a space of vector-valued modular forms generated by the
// functionals of Heegner divisors H(γ, n), and its primitive variant
// generated by P(γ, n).
//
// 🚀 What is heegner?
//
//	An exact, deterministic toolkit that brings together:
//		• Exact rational linear algebra (matrix): vectors, echelon rank, solve
//		• Polyhedral cones (polyhedral): double description, incircle radius
//		• Discriminant forms (weilrep): cosets, norms, the Representation contract
//		• Divisors (divisor): H/P elements, enumeration, Möbius expansion
//		• Special bases (basis): forms at their first nonzero indices
//		• Bounds (bound): Eisenstein and cusp constants, the radius bound
//		• Cones (cone): Heegner, PrimitiveHeegner, membership and checks
//		• Jobs (config): YAML job files driving the cone options
//
// ✨ Why heegner?
//
//   - Exact – every functional and every hyperplane is a big.Rat
//   - Deterministic – rays, terms and generators come out in a fixed order
//   - Pluggable – the modular-forms engine is an interface you provide
//
// Layout:
//
//	matrix/     — exact vectors, dense matrices and the incremental echelon
//	polyhedral/ — cone from generators, hyperplanes, extreme rays, radius
//	weilrep/    — discriminant forms and the Representation interface
//	divisor/    — Element, Enumerate, Divisor algebra, Möbius expansion
//	basis/      — special basis of cusp forms at a precision
//	bound/      — ζ, L(s, χ), Kronecker symbols and the bound formula
//	cone/       — the cone itself: build, identify, classify, check
//	config/     — cone jobs in YAML
//
// Quick example (lattice diag(2, 2), weight 21/2):
//
//	c, err := cone.Heegner(w, big.NewRat(21, 2), cone.WithBound(big.NewRat(3, 1)))
//	if err != nil { ... }
//	fmt.Println(c)
//	// Cone of Heegner divisors of weight 21/2 up to 3.0000, 4 extreme rays (exact):
//	//   H(0, 0, 1)
//	//   ...
//
//	go get github.com/katalvlaran/heegner
package heegner
