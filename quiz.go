/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"html"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// scoreTable records one point value per player per question. The question
// key list is owned by the table and shared by every player, so rows can
// never drift out of column order.
type scoreTable struct {
	players   []string
	questions []string
	points    map[string]map[string]int
}

func newScoreTable(players []string) *scoreTable {
	points := make(map[string]map[string]int, len(players))
	for _, player := range players {
		points[player] = make(map[string]int)
	}

	return &scoreTable{
		players: players,
		points:  points,
	}
}

func (t *scoreTable) addQuestion(key string) {
	t.questions = append(t.questions, key)
}

func (t *scoreTable) recordPoint(player, question string, point int) {
	t.points[player][question] = point
}

func (t *scoreTable) point(player, question string) int {
	return t.points[player][question]
}

func (t *scoreTable) total(player string) int {
	total := 0
	for _, question := range t.questions {
		total += t.points[player][question]
	}

	return total
}

// runQuiz asks every player every question, in order, one at a time. Answers
// are free text, matched case-insensitively against the correct answer after
// trimming; anything else scores zero.
func runQuiz(a asker, out io.Writer, rng *rand.Rand, questions []triviaQuestion, players []string) (*scoreTable, error) {
	table := newScoreTable(players)

	for index, item := range questions {
		question := html.UnescapeString(item.Question)
		correctAnswer := html.UnescapeString(item.CorrectAnswer)

		choices := make([]string, 0, len(item.IncorrectAnswers)+1)
		for _, choice := range item.IncorrectAnswers {
			choices = append(choices, html.UnescapeString(choice))
		}
		choices = append(choices, correctAnswer)

		rng.Shuffle(len(choices), func(i, j int) {
			choices[i], choices[j] = choices[j], choices[i]
		})

		prompt := fmt.Sprintf("%s Choices are: %s", question, strings.Join(choices, ", "))

		key := strconv.Itoa(index + 1)
		table.addQuestion(key)

		for _, player := range players {
			answer, err := a.Ask(fmt.Sprintf("%s: %s\n", player, prompt))
			if err != nil {
				return nil, err
			}

			point := 0
			if strings.EqualFold(strings.TrimSpace(answer), correctAnswer) {
				point = 1
			}

			table.recordPoint(player, key, point)
		}

		fmt.Fprintf(out, "\nCorrect answer is: %s\n\n", correctAnswer)
	}

	return table, nil
}
