// Package safesource locates safe sources and safe chains of a reduced
// Hasse diagram: a source (in-degree 0 vertex) or chain (maximal unbranched
// path from a source) is safe when realizing its signed-character label on
// the live component graph leaves every resulting component still
// reducible.
//
// The three policies (standard, exponential, interactive) share one safety
// check and differ only in which safe candidates they return, rather than
// three near-duplicate functions.
package safesource
