// Package user holds the user record, its constructor, and its Summarizer binding.
package user

import (
	"fmt"

	"github.com/sghaida/usersummary/summary"
)

// Record is a user identity.
//
// DefaultSummary is inherited from the embedded summary.ReadMore.
type Record struct {
	summary.ReadMore

	Username    string
	Email       string
	SignInCount uint64
	Active      bool
}

var _ summary.Summarizer = Record{}

// Create builds a Record from username and email, taken verbatim.
// Every created record starts with SignInCount 1 and Active true.
func Create(username, email string) Record {
	return Record{
		Username:    username,
		Email:       email,
		SignInCount: 1,
		Active:      true,
	}
}

// Summarize returns "<username> (<email>)".
func (r Record) Summarize() string {
	return fmt.Sprintf("%s (%s)", r.Username, r.Email)
}
