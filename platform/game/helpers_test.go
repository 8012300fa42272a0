package game

import (
	"fmt"

	"github.com/example/landlord-backend/app/models"
)

// testRoom seats n players and opens play without shuffling, so p1 always
// holds the first turn.
func testRoom(n int) *Room {
	r := NewRoom(1)
	for i := 0; i < n; i++ {
		if err := r.AddPlayer(fmt.Sprintf("p%d", i+1), fmt.Sprintf("Player %d", i+1), models.Colors[i]); err != nil {
			panic(err)
		}
	}
	r.Started = true
	return r
}

// script replaces the room dice with a fixed sequence of throws.
func script(rolls ...[2]int) func() (int, int) {
	i := 0
	return func() (int, int) {
		roll := rolls[i%len(rolls)]
		i++
		return roll[0], roll[1]
	}
}

func (r *Room) prop(idx int) *models.Property {
	return r.Board[idx].(*models.Property)
}
