// Package access shows constant time, O(1): reading one element at a known
// position of a slice costs the same whether the slice holds ten elements or
// ten million.
//
// What
//
//   - First: element at index 0.
//   - Last:  element at index len-1.
//   - At:    element at an arbitrary, bounds-checked index.
//
// None of the functions iterate; each performs one length check and one
// indexed read.
//
// Errors
//
//   - ErrEmptyInput  if the slice has no elements.
//   - ErrOutOfRange  if At is asked for an index outside [0, len).
//
// Usage
//
//	v, err := access.First([]int{7, 8, 9}) // 7, nil
//	_, err = access.First([]int{})        // errors.Is(err, access.ErrEmptyInput)
package access
