// Package template implements the digit-placeholder fill-in used by structured
// input formats such as phone numbers and dates. A pattern marks digit slots
// with 'd'; every other rune is a literal that is laid out between digits.
package template
