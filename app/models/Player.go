package models

// Player is the in-room game state for one seat. The account the seat
// belongs to lives in Postgres; this struct is ephemeral like the room.
type Player struct {
	Id        string
	Name      string
	Color     string
	Money     int // can go negative transiently, settlement marks bankrupt
	Pos       int
	InJail    bool
	JailTurns int
	Bankrupt  bool
}

// Colors a seat may pick from.
var Colors = []string{"red", "blue", "green", "yellow", "purple", "cyan"}

func ValidColor(color string) bool {
	for _, c := range Colors {
		if c == color {
			return true
		}
	}
	return false
}

type PlayerDto struct {
	Id         string `json:"id"`
	Username   string `json:"username"`
	Color      string `json:"color"`
	Balance    int    `json:"balance"`
	Pos        int    `json:"pos"`
	Jail       bool   `json:"jail"`
	Bankrupt   bool   `json:"bankrupt"`
	Properties []int  `json:"properties"` // board indexes of owned tiles
}
