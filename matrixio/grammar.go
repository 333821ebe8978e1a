package matrixio

import "github.com/alecthomas/participle"

// document is the whole matrix file: a header of two integers (species
// count, character count) followed by every 0/1 value in the body,
// row-major. The grammar only tokenizes the flat stream of integers —
// whitespace and newlines are insignificant to participle's default
// lexer — and reshaping the flat Values slice into an m×n grid is left
// to parse.go, mirroring lnz-BalancedGo/lib/parser.go's own split
// between what the grammar captures and what GetGraph reshapes
// afterward in plain Go.
type document struct {
	M      int   `@Int`
	N      int   `@Int`
	Values []int `@Int*`
}

var grammar = participle.MustBuild(&document{})
