// Package message defines Message, a closed set of four message shapes.
package message

import "fmt"

// Message is one of Quit, Move, Write or ChangeColor.
// The unexported marker keeps the set closed to this package.
type Message interface {
	isMessage()
}

// Quit carries no payload.
type Quit struct{}

// Move carries a coordinate pair.
type Move struct {
	X, Y int32
}

// Write carries a text payload.
type Write struct {
	Text string
}

// ChangeColor carries three unlabeled components.
type ChangeColor [3]int32

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

// Kind names the case a Message holds.
type Kind int

const (
	KindQuit Kind = iota
	KindMove
	KindWrite
	KindChangeColor
)

func (k Kind) String() string {
	switch k {
	case KindQuit:
		return "Quit"
	case KindMove:
		return "Move"
	case KindWrite:
		return "Write"
	case KindChangeColor:
		return "ChangeColor"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// KindOf reports which case m holds.
// It panics on nil or on a case this package does not know about.
func KindOf(m Message) Kind {
	switch m.(type) {
	case Quit:
		return KindQuit
	case Move:
		return KindMove
	case Write:
		return KindWrite
	case ChangeColor:
		return KindChangeColor
	default:
		panic(fmt.Errorf("message: unknown case %T", m))
	}
}
