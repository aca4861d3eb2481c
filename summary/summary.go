// Package summary defines the Summarizer contract and its default behaviour.
//
// Go interfaces cannot carry method bodies, so the defaulted method lives on
// ReadMore. Types adopt the default by embedding ReadMore and override it by
// declaring their own DefaultSummary.
package summary

// DefaultText is what DefaultSummary returns unless a type overrides it.
const DefaultText = "(Read more...)"

// Summarizer is implemented by anything that can describe itself in one line.
type Summarizer interface {
	// Summarize is required; every adopting type supplies it.
	Summarize() string
	// DefaultSummary has a default via ReadMore.
	DefaultSummary() string
}

// ReadMore supplies the default DefaultSummary. Embed it by value.
type ReadMore struct{}

// DefaultSummary returns DefaultText.
func (ReadMore) DefaultSummary() string {
	return DefaultText
}
