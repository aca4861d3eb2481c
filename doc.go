// Package usersummary is a small, explicit walk through Go's building blocks
// for modelling a domain:
//
//   - summary: a behaviour contract with one required and one defaulted method
//   - user: a plain record, its constructor, and its binding to the contract
//   - message: a closed sum type over four payload shapes
//   - cmd/usersummary: the composition root that wires them and prints one line
//
// There is no container, no I/O beyond a single write to stdout, and no
// concurrency. Wiring stays in main.
package usersummary
