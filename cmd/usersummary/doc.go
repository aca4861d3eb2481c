// Command usersummary builds a user record and prints its summary.
//
// It reads no arguments, flags or environment variables and always prints
// exactly one line:
//
//	User summary: johndoe (john@example.com)
//
// The logic lives in run so tests can capture output without os.Exit.
package main
