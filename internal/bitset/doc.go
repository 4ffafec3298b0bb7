// Package bitset implements the word-packed bitmap used to track which
// slots of a small-boxed array have been initialized.
package bitset
