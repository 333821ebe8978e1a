// Package matrixio parses the textual character matrix format of spec
// §6 into an *rbgraph.Graph: a first line of two integers (species count,
// character count) followed by that many rows of 0/1 values.
//
// Parsing uses a small participle grammar rather than hand-rolled
// scanning, following the example corpus's grammar-combinator parsing
// idiom (lnz-BalancedGo/lib/parser.go builds a participle.Parser over a
// struct-tagged grammar and calls ParseString once).
package matrixio
