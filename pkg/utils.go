package pkg

import (
	"math/rand"
	"time"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

var seeded = rand.New(rand.NewSource(time.Now().UnixNano()))

// RandString returns a short join code.
func RandString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[seeded.Intn(len(letters))]
	}
	return string(b)
}
