package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh/spinner"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"github.com/tarantool/permrank/internal/permrank/cli/render"
	"github.com/tarantool/permrank/internal/permrank/cli/streams"
)

const backNavigation = "back"

// Verify interface compliance in compile time.
var _ render.Renderer = (*Renderer)(nil)

type result struct {
	value string
	err   error
}

// Renderer type is implementation of renderer that using prompts.
type Renderer struct {
	useTTY  bool
	in      *streams.In
	out     *streams.Out
	scanner *bufio.Scanner
}

// NewRenderer creates Renderer object.
func NewRenderer(in *streams.In, out *streams.Out, useTTY bool) *Renderer {
	return &Renderer{
		useTTY:  useTTY,
		in:      in,
		out:     out,
		scanner: bufio.NewScanner(in),
	}
}

// SelectionMenu displays items and returns the selected one.
func (r *Renderer) SelectionMenu(ctx context.Context, title string, items []string) (string, error) {
	title = strings.TrimSpace(title)

	return r.await(ctx, func() result {
		if r.useTTY {
			prompt := r.selectionPrompt(title, items)

			_, value, err := prompt.Run()
			if err != nil {
				return result{err: errors.New(err.Error())}
			}

			return result{value: value}
		}

		_, _ = fmt.Fprintln(r.out, title)

		itemsMap := make(map[string]string, len(items))

		for i, item := range items {
			itemsMap[strconv.Itoa(i+1)] = item
			_, _ = fmt.Fprintf(r.out, "%d. %s\n", i+1, item)
		}

		for {
			_, _ = fmt.Fprint(r.out, "Write a number: ")

			input, err := r.readEchoed()
			if err != nil {
				return result{err: err}
			}

			if value, ok := itemsMap[input]; ok {
				_, _ = fmt.Fprintf(r.out, "Selected: %s\n", value)

				return result{value: value}
			}

			_, _ = fmt.Fprintln(r.out, "invalid input, please try again")
		}
	})
}

// InputMenu asks for a line until validateFunc accepts it.
func (r *Renderer) InputMenu(ctx context.Context, title string, validateFunc func(string) error) (string, error) {
	title = strings.TrimSpace(title)

	return r.await(ctx, func() result {
		if r.useTTY {
			prompt := r.stringInputPrompt(title, validateFunc)

			value, err := prompt.Run()
			if err != nil {
				return result{err: errors.New(err.Error())}
			}

			return result{value: value}
		}

		for {
			_, _ = fmt.Fprintf(r.out, "%s: ", title)

			input, err := r.readEchoed()
			if err != nil {
				return result{err: err}
			}

			if err = validateFunc(input); err == nil {
				return result{value: input}
			}

			_, _ = fmt.Fprintln(r.out, err.Error())
		}
	})
}

// WithSpinner starts spinner while function is running.
func (r *Renderer) WithSpinner(title string, fn func()) {
	if r.useTTY {
		ctx, cancel := context.WithCancel(context.Background())

		go func() {
			defer cancel()
			fn()
		}()

		_ = spinner.New().
			Title(title).
			Context(ctx).
			Run()

		return
	}

	_, _ = fmt.Fprintln(r.out, title)

	fn()
}

// ReadLine reads input from stdin.
func (r *Renderer) ReadLine() (string, error) {
	if r.scanner.Scan() {
		return strings.TrimSpace(r.scanner.Text()), nil
	}

	if err := r.scanner.Err(); err != nil {
		return "", errors.New(err.Error())
	}

	return "", errors.New(io.EOF.Error())
}

// IsTerminal returns true if this stream is connected to a terminal.
func (r *Renderer) IsTerminal() bool {
	return r.in.IsTerminal()
}

// await runs fn in background and returns its result unless ctx is done first.
func (r *Renderer) await(ctx context.Context, fn func() result) (string, error) {
	resultChan := make(chan result, 1)

	go func() {
		resultChan <- fn()
	}()

	select {
	case <-ctx.Done():
		return "", errors.New(ctx.Err().Error())
	case res := <-resultChan:
		return res.value, res.err
	}
}

// readEchoed reads a line and echoes it when input is not typed by a user.
func (r *Renderer) readEchoed() (string, error) {
	input, err := r.ReadLine()
	if err != nil {
		return "", err
	}

	if !r.in.IsTerminal() {
		_, _ = fmt.Fprintf(r.out, "%s\n", input)
	}

	return input, nil
}

// selectionPrompt returns prompt for selection items.
func (r *Renderer) selectionPrompt(title string, items []string) *promptui.Select {
	templates := &promptui.SelectTemplates{
		Label: "{{ . }}",
		Active: fmt.Sprintf(
			"  {{ if eq . \"%s\" }}> {{ . | red }}{{ else }}> {{ . | cyan }}{{ end }}",
			backNavigation),
		Inactive: fmt.Sprintf(
			"{{ if eq . \"%s\" }}  {{ . | red }}{{ else }}  {{ . }}{{ end }}",
			backNavigation),
		Selected: "\U00002714 {{ . | green }}",
	}

	//nolint:mnd
	return &promptui.Select{
		Stdin:     r.in,
		Stdout:    r.out,
		Label:     title,
		Items:     items,
		Templates: templates,
		HideHelp:  true,
		Size:      10,
	}
}

// stringInputPrompt returns prompt for string input.
func (r *Renderer) stringInputPrompt(title string, validateFunc func(string) error) *promptui.Prompt {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} ",
		Success: "{{ . | bold }} ",
	}

	return &promptui.Prompt{
		Stdin:     r.in,
		Stdout:    r.out,
		Label:     title,
		Templates: templates,
		Validate:  validateFunc,
	}
}
