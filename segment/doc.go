// Package segment splits UTF-8 text into byte-bounded chunks whose boundaries
// never fall inside a character and, where the window allows, fall on a
// natural breakpoint such as punctuation or whitespace.
//
// All functions are pure and safe for concurrent use. Input is expected to be
// valid UTF-8; boundaries are located, not validated.
package segment
