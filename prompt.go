/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// asker is the single capability the game needs from a terminal: show a
// prompt, read back one line.
type asker interface {
	Ask(prompt string) (string, error)
}

type consoleAsker struct {
	reader *bufio.Reader
	writer io.Writer
}

func newConsoleAsker(in io.Reader, out io.Writer) *consoleAsker {
	return &consoleAsker{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

func (c *consoleAsker) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(c.writer, prompt); err != nil {
		return "", err
	}

	line, err := c.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func askPlayerCount(a asker, out io.Writer) (int, error) {
	for {
		answer, err := a.Ask("How many players? ")
		if err != nil {
			return 0, err
		}

		count, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			fmt.Fprintln(out, "Please, give a number")

			continue
		}

		if count < 1 {
			fmt.Fprintln(out, "At least one player is needed to play.")

			continue
		}

		return count, nil
	}
}

func askPlayerNames(a asker, out io.Writer, count int) ([]string, error) {
	players := make([]string, 0, count)

	for number := 1; number <= count; number++ {
		for {
			name, err := a.Ask(fmt.Sprintf("Player %d name: ", number))
			if err != nil {
				return nil, err
			}

			name = strings.TrimSpace(name)

			if name == "" {
				fmt.Fprintln(out, "Please give a name.")

				continue
			}

			if slices.Contains(players, name) {
				fmt.Fprintln(out, "The name is already taken. Please give another name.")

				continue
			}

			players = append(players, name)

			break
		}
	}

	return players, nil
}

func askQuestionCount(a asker, out io.Writer) (int, error) {
	for {
		answer, err := a.Ask("How many questions would you like to have? ")
		if err != nil {
			return 0, err
		}

		count, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			fmt.Fprintln(out, "Please, give a number")

			continue
		}

		switch {
		case count > maxQuestions:
			fmt.Fprintf(out, "Sorry, the maximum number of questions is %d.\n", maxQuestions)
		case count < 1:
			fmt.Fprintln(out, "At least one question is needed to play.")
		default:
			return count, nil
		}
	}
}
