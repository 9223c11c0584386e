// Released under an MIT license. See LICENSE.

// Package noun defines the interface for the two nk shapes.
package noun

// I (noun) is the basic unit of storage in nk: an atom or a cell.
type I interface {
	Equal(n I) bool
	Name() string
}
