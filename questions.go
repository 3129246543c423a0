/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Open Trivia Database response codes, per https://opentdb.com/api_config.php
const (
	triviaCodeSuccess      = 0
	triviaCodeNoResults    = 1
	triviaCodeInvalidParam = 2
	triviaCodeRateLimit    = 5
)

type triviaQuestion struct {
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type triviaResponse struct {
	ResponseCode int              `json:"response_code"`
	Results      []triviaQuestion `json:"results"`
}

func questionURL(cfg *Config, amount int) string {
	values := url.Values{}
	values.Set("amount", strconv.Itoa(amount))

	if cfg.category != 0 {
		values.Set("category", strconv.Itoa(cfg.category))
	}

	if cfg.difficulty != "" {
		values.Set("difficulty", cfg.difficulty)
	}

	return cfg.endpoint + "?" + values.Encode()
}

// fetchQuestions retrieves amount questions from the trivia api. Upstream
// failures are reported to the operator but never abort the game; the caller
// gets whatever payload came back, empty included.
func fetchQuestions(ctx context.Context, cfg *Config, amount int) (*triviaResponse, error) {
	requestURL := questionURL(cfg, amount)

	logf(cfg, "FETCH: %d questions from %s", amount, cfg.endpoint)

	startTime := time.Now()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	client := &http.Client{
		Timeout: cfg.timeout,
	}

	response, err := client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read question payload: %w", err)
	}

	payload := &triviaResponse{}

	if response.StatusCode != http.StatusOK {
		log.Printf("Something went wrong! Didn't get the questions, got status code %d", response.StatusCode)

		// Error bodies are rarely valid payloads, so decode failures here are
		// expected and the (empty) payload is still handed back.
		_ = json.Unmarshal(body, payload)

		return payload, nil
	}

	if err := json.Unmarshal(body, payload); err != nil {
		return nil, fmt.Errorf("failed to decode question payload: %w", err)
	}

	if payload.ResponseCode != triviaCodeSuccess {
		log.Printf("The trivia api reported a problem (response code %d); continuing with %d question(s)",
			payload.ResponseCode,
			len(payload.Results),
		)
	}

	logf(cfg, "FETCH: Received %d question(s) in %s",
		len(payload.Results),
		time.Since(startTime).Round(time.Microsecond),
	)

	return payload, nil
}
