// Package weilrep describes the modular-forms collaborator of the Heegner
// cone computation.
//
// Representation is the contract a modular-forms library must satisfy:
// coset representatives and norms of the discriminant form, the dual
// representation, the discriminant, Eisenstein and Poincaré series to a given
// Fourier precision and the dimension of the cusp-form space. Computing
// Fourier coefficients is outside this module; only the finite quadratic
// side is implemented here (DiscriminantForm), together with linear
// combinations of forms (Combine) and the relation-space helper
// (RelationDimension).
package weilrep
