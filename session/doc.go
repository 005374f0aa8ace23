// Package session owns the mutable state of one interpolation workflow: the
// point set, the current selection and the last computed polynomial.
//
// Every user-facing trigger is a method on Session:
//
//	AddPoint / Select / RemoveSelected   mutate the point set
//	Calculate                            fit the polynomial and export it
//	Evaluate / FirstDerivative / ...     use the last fit
//
// Mutating the point set after a calculation marks the coefficients stale;
// Evaluate and the derivatives then fail with ErrNotCalculated until the next
// successful Calculate. Failed operations never change state.
//
// A Session is safe for concurrent use: each method is one critical section,
// so a calculation never observes a half-updated point set.
package session
