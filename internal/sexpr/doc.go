// Package sexpr defines the S-expression value model produced by the
// compiler together with its textual wire codec.
//
// A value is either an atom (number, string, boolean, null, symbol) or a
// list of values. Strings and symbols are distinct kinds: "x" and x mean
// different things even though they carry the same text, and the codec
// keeps them apart on the wire.
package sexpr
