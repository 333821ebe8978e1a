// Package reduction implements the driver algorithm: given a red-black
// graph, produce an ordered list of signed characters whose sequential
// realization reduces it to the empty graph, or report NoReduction if no
// such sequence exists.
//
// The driver decomposes into black-components, applies forced moves
// (universal character, free species) ahead of the Hasse-based
// safesource.Find search, and recurses — backtracking over candidates in
// Exponential mode as a branching search over cloned graphs.
package reduction
