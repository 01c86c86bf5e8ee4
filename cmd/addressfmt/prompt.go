package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// prompter asks questions on the terminal in the style
// "prompt [default]: " and keeps asking until it gets a usable answer.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter() *prompter {
	return &prompter{
		in:  bufio.NewReader(os.Stdin),
		out: os.Stdout,
	}
}

func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// str asks for a string. An empty answer yields def when one is given,
// otherwise the question is repeated.
func (p *prompter) str(prompt, def string) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
		} else {
			fmt.Fprintf(p.out, "%s: ", prompt)
		}

		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer == "" {
			if def != "" {
				return def, nil
			}
			fmt.Fprintln(p.out, "This field is required. Please enter a value.")
			continue
		}
		return answer, nil
	}
}

func (p *prompter) intValue(prompt string, def int, valid func(int) error) (int, error) {
	for {
		answer, err := p.str(prompt, strconv.Itoa(def))
		if err != nil {
			return 0, err
		}

		v, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: %q is not a whole number. Please try again.\n", answer)
			continue
		}
		if valid != nil {
			if err := valid(v); err != nil {
				fmt.Fprintf(p.out, "%v. Please try again.\n", err)
				continue
			}
		}
		return v, nil
	}
}

func (p *prompter) floatValue(prompt string, def float64, valid func(float64) error) (float64, error) {
	for {
		defStr := ""
		if def != 0 {
			defStr = strconv.FormatFloat(def, 'g', -1, 64)
		}

		answer, err := p.str(prompt, defStr)
		if err != nil {
			return 0, err
		}

		v, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: %q is not a number. Please try again.\n", answer)
			continue
		}
		if valid != nil {
			if err := valid(v); err != nil {
				fmt.Fprintf(p.out, "%v. Please try again.\n", err)
				continue
			}
		}
		return v, nil
	}
}

// filePath asks for the path of an existing file. Surrounding quotes,
// as left by shell drag-and-drop, are stripped.
func (p *prompter) filePath(prompt string) (string, error) {
	for {
		answer, err := p.str(prompt, "")
		if err != nil {
			return "", err
		}

		answer = strings.Trim(answer, `"'`)
		info, err := os.Stat(answer)
		if err != nil || info.IsDir() {
			fmt.Fprintf(p.out, "File not found: %s\nPlease check the path and try again.\n", answer)
			continue
		}
		return answer, nil
	}
}

func (p *prompter) confirm(prompt string) (bool, error) {
	fmt.Fprintf(p.out, "%s (y/n) [y]: ", prompt)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}

	answer = strings.ToLower(answer)
	return answer == "" || answer == "y" || answer == "yes", nil
}
