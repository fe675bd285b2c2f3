// Package ptr provides helpers to take the address of literal values.
package ptr

// String returns a pointer to the given string.
func String(s string) *string { return &s }

// Int returns a pointer to the given int.
func Int(i int) *int { return &i }
