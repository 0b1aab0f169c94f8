// SPDX-License-Identifier: MIT

// Package matrix: element type constraint shared by the container, the codec
// and the multiply kernels. This file intentionally contains ONLY the numeric
// type set; errors live in errors.go and validation in validators.go per the
// global conventions.
package matrix

// Element is the numeric universe a Matrix can hold: signed integers and
// floats, including named types derived from them. Multiplication and
// addition close over every member, which is all the multiply kernel assumes.
// Unsigned and complex kinds are intentionally absent: the text codec parses
// signed decimal tokens only.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}
