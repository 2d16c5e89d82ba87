// Package mat implements small fixed-size matrices over the numeric kinds.
//
// A Matrix[T, R, C] has R rows and C columns, both between two and four,
// and is stored as C column vectors of arity R. Entries are addressed as
// (col, row) in that order. Products check the inner dimension statically:
// Mul accepts a Matrix[T, R, K] and a Matrix[T, K, C] and nothing else.
//
// Text forms list the entries column by column.
package mat
