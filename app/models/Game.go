package models

// Game is the Postgres record behind a room; live state stays in memory.
type Game struct {
	Id     string
	Name   string
	Status string // "open" | "in progress" | "finished"
}

type GameCreateDto struct {
	Name string `json:"name"`
	Seed int64  `json:"seed"` // 0 means pick one, kept for deterministic replays
}

type VerifyGameDto struct {
	Code string `query:"code"`
}
