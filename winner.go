/*
Copyright © 2025 Seednode <seednode@seedno.de>
*/

package main

import (
	"fmt"
	"io"
)

// winnerSet returns the highest total and every player tied at it, in entry
// order. A highest total of zero earns nobody a win, so the set is empty.
func winnerSet(table *scoreTable) (int, []string) {
	highest := -1

	var winners []string

	for _, player := range table.players {
		total := table.total(player)

		switch {
		case total > highest:
			highest = total
			winners = []string{player}
		case total == highest:
			winners = append(winners, player)
		}
	}

	if highest <= 0 {
		return highest, nil
	}

	return highest, winners
}

func announceWinners(out io.Writer, table *scoreTable) {
	highest, winners := winnerSet(table)

	if len(winners) == 0 {
		fmt.Fprintln(out, "Sorry, no points. Better luck next time!")

		return
	}

	fmt.Fprintf(out, "Player(s) with the highest score (%d):\n", highest)

	for _, winner := range winners {
		fmt.Fprintln(out, winner)
	}

	fmt.Fprintln(out, "Congratulations!")
}
