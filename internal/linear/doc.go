// Package linear provides an ordinary least squares fit of a line to
// (key, position) samples. It is the training primitive of the recursive
// model index.
package linear
