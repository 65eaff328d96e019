package shell

import "strings"

// Kind classifies an output line so front ends can style it.
type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindWarning
	KindError
)

// Line is one line of command output
type Line struct {
	Text string
	Kind Kind
}

// Output is everything a command produced.
type Output struct {
	Lines []Line

	// Prompting is set when the shell waits for a search selection;
	// the next Execute call is treated as the answer.
	Prompting bool

	// Quit is set by EXIT
	Quit bool
}

// String joins the output lines with newlines.
func (o Output) String() string {
	texts := make([]string, len(o.Lines))
	for i, l := range o.Lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, "\n")
}

func (o *Output) add(kind Kind, text string) {
	o.Lines = append(o.Lines, Line{Text: text, Kind: kind})
}

func (o *Output) info(text string)    { o.add(KindInfo, text) }
func (o *Output) success(text string) { o.add(KindSuccess, text) }
func (o *Output) warn(text string)    { o.add(KindWarning, text) }
func (o *Output) fail(text string)    { o.add(KindError, text) }

// block adds a multi-line chunk (tables) as info lines
func (o *Output) block(text string) {
	for _, l := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		o.info(l)
	}
}
