// SPDX-License-Identifier: MIT
// Package: chromatic

// Package chromatic is the root of a library for chromatic invariants of
// matroids: the chromatic polynomial, and the chromatic quasisymmetric and
// non-commutative quasisymmetric functions obtained from generic colorings.
//
// The work is split into subpackages, leaves first:
//
//	composition/     integer compositions, generator, quasi-shuffle
//	setcomposition/  set compositions, generator, quasi-shuffle engine
//	polynomial/      exact integer polynomials
//	qsym/            quasisymmetric functions in the monomial basis
//	ncqsym/          non-commutative quasisymmetric functions
//	matroid/         rank oracles, bases, flats, greedy bases
//	families/        uniform, Schubert, nested and graphic matroids
//	chromatic/       Möbius function, χ, QSym and NCQSym invariants
//	conjecture/      stability matrices, exact ranks, dimension study
//
// The chromatic command (cmd/chromatic) exposes the computations with text
// and JSON output, reading matroids from shorthand arguments or YAML files.
//
// Quick example:
//
//	m, _ := families.Uniform(3, 2)
//	p, _ := chromatic.Polynomial(m)          // x^2 - 3x + 2
//	q, _ := chromatic.Quasisymmetric(m)      // 3·M(1,2) + 6·M(1,1,1)
//	fmt.Println(p, q.Evaluate(3))
//
// All coefficients are exact int64 values. Memo caches are explicit
// objects (composition.Shuffler, setcomposition.Generator) safe for
// concurrent use; everything else is immutable.
package chromatic
