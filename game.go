/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// Play runs one full game: collect players, fetch questions, quiz everyone,
// announce the winner(s), export the score table.
func Play(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to a trivia game!")

	a := newConsoleAsker(in, out)

	playerCount, err := askPlayerCount(a, out)
	if err != nil {
		return err
	}

	players, err := askPlayerNames(a, out, playerCount)
	if err != nil {
		return err
	}

	questionCount, err := askQuestionCount(a, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out,
		"\nThank you! Lets play the trivia game. All the contestants get to answer the same %d questions. "+
			"Each correct answer will earn you 1 point. If you don't know, guess! Eternal glory awaits whoever wins!\n\n",
		questionCount,
	)

	payload, err := fetchQuestions(ctx, cfg, questionCount)
	if err != nil {
		return err
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))

	table, err := runQuiz(a, out, rng, payload.Results, players)
	if err != nil {
		return err
	}

	announceWinners(out, table)

	if err := exportScores(cfg.output, table); err != nil {
		return err
	}

	if info, err := os.Stat(cfg.output); err == nil {
		logf(cfg, "EXPORT: Wrote %s (%s)", cfg.output, humanReadableSize(info.Size()))
	}

	fmt.Fprintf(out, "You can check the results in %s\n", cfg.output)

	return nil
}
