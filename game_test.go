/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	var amounts []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		amounts = append(amounts, r.URL.Query().Get("amount"))

		payload := triviaResponse{
			ResponseCode: triviaCodeSuccess,
			Results:      testQuestions(),
		}

		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	t.Cleanup(server.Close)

	cfg := &Config{
		endpoint: server.URL,
		output:   filepath.Join(t.TempDir(), "quiz_score.csv"),
		seed:     1,
		timeout:  5 * time.Second,
	}

	// Two players, an over-limit question count that gets re-prompted, then
	// one answer per player per question.
	input := strings.Join([]string{
		"2",
		"A",
		"B",
		"51",
		"2",
		"paris",
		"PARIS",
		"0",
		"42",
	}, "\n") + "\n"

	var out bytes.Buffer

	require.NoError(t, Play(context.Background(), cfg, strings.NewReader(input), &out))

	// The rejected count of 51 never reached the network.
	require.Equal(t, []string{"2"}, amounts)

	require.Contains(t, out.String(), "Welcome to a trivia game!")
	require.Contains(t, out.String(), "Sorry, the maximum number of questions is 50.")
	require.Contains(t, out.String(), "answer the same 2 questions")
	require.Contains(t, out.String(), "Correct answer is: Paris")
	require.Contains(t, out.String(), "Player(s) with the highest score (2):\nB\nCongratulations!")
	require.Contains(t, out.String(), "You can check the results in "+cfg.output)

	file, err := os.Open(cfg.output)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Equal(t, [][]string{
		{"Name", "Question 1", "Question 2", "Total"},
		{"A", "1", "0", "1"},
		{"B", "1", "1", "2"},
	}, records)
}

func TestPlay_InputEndsEarly(t *testing.T) {
	cfg := &Config{
		endpoint: "https://opentdb.com/api.php",
		output:   filepath.Join(t.TempDir(), "quiz_score.csv"),
		timeout:  5 * time.Second,
	}

	var out bytes.Buffer

	err := Play(context.Background(), cfg, strings.NewReader("1\n"), &out)
	require.Error(t, err)
}
