// Package prompt reads validated answers from an interactive terminal.
//
// Every question can be abandoned by typing the cancel word, which surfaces
// as errors.ErrCanceled. End of input is treated the same way.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Prompter asks questions on out and reads single-line answers from in.
// It satisfies catalog.Prompter.
type Prompter struct {
	in         *bufio.Reader
	out        io.Writer
	cancelWord string
}

// New returns a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:         bufio.NewReader(in),
		out:        out,
		cancelWord: constants.CancelWord,
	}
}

// WithCancelWord changes the word that abandons a question.
func (p *Prompter) WithCancelWord(word string) *Prompter {
	p.cancelWord = word
	return p
}

// Prompt writes question and returns the reply with the line ending removed.
func (p *Prompter) Prompt(question string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s: ", question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.WrapIO("read", "input", err)
		}
		// End of input with nothing typed reads as giving up.
		if line == "" {
			return "", errors.ErrCanceled
		}
	}
	line = strings.TrimRight(line, "\r\n")

	if strings.EqualFold(strings.TrimSpace(line), p.cancelWord) {
		return "", errors.ErrCanceled
	}
	return line, nil
}

// Ask repeats question until validate accepts the answer, printing the
// validation message after each rejected attempt.
func (p *Prompter) Ask(question string, validate Validator) (string, error) {
	hint := fmt.Sprintf("%s (type '%s' to cancel)", question, p.cancelWord)
	for {
		answer, err := p.Prompt(hint)
		if err != nil {
			return "", err
		}
		if validate == nil {
			return answer, nil
		}
		verr := validate(answer)
		if verr == nil {
			return strings.TrimSpace(answer), nil
		}
		fmt.Fprintln(p.out, message(verr))
	}
}

func message(err error) string {
	var ve *errors.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
