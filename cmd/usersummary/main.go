package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sghaida/usersummary/message"
	"github.com/sghaida/usersummary/user"
)

// run wires the record and prints its summary, returning an exit code.
func run(stdout, stderr io.Writer) int {
	u := user.Create("johndoe", "john@example.com")

	// Constructed for illustration only; nothing reads it.
	msg := message.Write{Text: "Hello, world!"}
	_ = msg

	if _, err := fmt.Fprintf(stdout, "User summary: %s\n", u.Summarize()); err != nil {
		_, _ = fmt.Fprintln(stderr, "usersummary:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr))
}
