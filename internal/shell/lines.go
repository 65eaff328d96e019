package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// RunLines drives the shell from a line-oriented reader, writing plain text
// output. It returns when the input ends, EXIT is entered or ctx is done.
func (s *Shell) RunLines(ctx context.Context, in io.Reader, out io.Writer, prompt string) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !s.Prompting() {
			fmt.Fprint(out, prompt)
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		res := s.Execute(scanner.Text())
		if text := res.String(); text != "" {
			fmt.Fprintln(out, text)
		}
		if res.Quit {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
	}
}
