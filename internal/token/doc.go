// Package token defines the lexical tokens produced by the lexer.
// Invariants:
//   - Kind is a closed enumeration; Word is only meaningful when Kind == Reserved.
//   - Tokens are plain values with no reference back to the lexer.
//   - String and RegExp payloads keep escape sequences verbatim; decoding
//     belongs to a later stage.
//   - Float parts use the empty string for "absent": every present part is
//     non-empty by construction.
package token
