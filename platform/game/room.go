package game

import (
	"fmt"
	"math/rand"
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/example/landlord-backend/app/models"
	"github.com/example/landlord-backend/platform/board"
)

const (
	StartingMoney  = 1500
	PassStartBonus = 200
	JailFine       = 50
	MaxJailTurns   = 3
	MinPlayers     = 2
	MaxPlayers     = 5
	LogTail        = 60
)

// Interruption is the single optional room-level sub-protocol. At most one
// of auction/trade can be pending at a time; only an auction blocks
// ordinary turn actions.
type Interruption interface {
	interruption()
}

// Room is one independent match. Every exported operation takes the room
// mutex for its full duration, so calls on the same room never interleave.
// Rooms share nothing with each other.
type Room struct {
	Id string

	mu   sync.Mutex
	rng  *rand.Rand
	dice func() (int, int) // swapped out in tests

	Players      []*models.Player // turn order once started
	Board        []models.Tile
	chance       []models.Card
	force        []models.Card
	Turn         int
	LastRoll     int
	Log          []string
	Interruption Interruption
	Winner       string
	Started      bool
	Finished     bool

	jailPos int
	rolled  bool // current player has rolled this turn
}

// NewRoom builds an empty room around a fresh board instance. The seed
// drives dice and card draws; pass the same seed to replay a match.
func NewRoom(seed int64) *Room {
	rng := rand.New(rand.NewSource(seed))
	r := &Room{
		Id:      uuid.NewV4().String(),
		rng:     rng,
		Board:   board.Build(),
		chance:  board.ChanceDeck(),
		force:   board.ForceDeck(),
		jailPos: board.JailIndex,
	}
	r.dice = func() (int, int) {
		return rng.Intn(6) + 1, rng.Intn(6) + 1
	}
	return r
}

// AddPlayer seats a player. Membership is open until Start freezes it.
func (r *Room) AddPlayer(id, name, color string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Started {
		return errInvalidState("game already started")
	}
	if len(r.Players) >= MaxPlayers {
		return errInvalidState("room is full")
	}
	if !models.ValidColor(color) {
		return errInvalidArgument("unknown color %q", color)
	}
	for _, p := range r.Players {
		if p.Id == id {
			return errInvalidState("player already seated")
		}
		if p.Color == color {
			return errInvalidArgument("color %s is taken", color)
		}
	}
	r.Players = append(r.Players, &models.Player{
		Id:    id,
		Name:  name,
		Color: color,
		Money: StartingMoney,
	})
	r.logf("%s joined", name)
	return nil
}

// RemovePlayer unseats a player. Only possible before start; once the game
// runs the roster is frozen and leaving is a transport concern.
func (r *Room) RemovePlayer(id string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Started {
		return errInvalidState("cannot leave a started game")
	}
	for i, p := range r.Players {
		if p.Id == id {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			r.logf("%s left", p.Name)
			return nil
		}
	}
	return errNotFound("player %s is not seated", id)
}

// Start freezes membership, shuffles the turn order and opens play.
func (r *Room) Start() *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Started {
		return errInvalidState("game already started")
	}
	if len(r.Players) < MinPlayers {
		return errInvalidState("need at least %d players", MinPlayers)
	}
	r.rng.Shuffle(len(r.Players), func(i, j int) {
		r.Players[i], r.Players[j] = r.Players[j], r.Players[i]
	})
	r.Started = true
	r.Turn = 0
	r.logf("game started, %s goes first", r.Players[0].Name)
	return nil
}

func (r *Room) player(id string) *models.Player {
	for _, p := range r.Players {
		if p.Id == id {
			return p
		}
	}
	return nil
}

func (r *Room) alive() []*models.Player {
	var out []*models.Player
	for _, p := range r.Players {
		if !p.Bankrupt {
			out = append(out, p)
		}
	}
	return out
}

func (r *Room) current() *models.Player {
	return r.Players[r.Turn]
}

// checkTurn is the shared precondition for every ordinary turn action.
func (r *Room) checkTurn(id string) *Error {
	if !r.Started {
		return errInvalidTurn("game has not started")
	}
	if r.Finished {
		return errInvalidState("game is over")
	}
	if _, ok := r.Interruption.(*Auction); ok {
		return errInvalidTurn("an auction is in progress")
	}
	p := r.player(id)
	if p == nil {
		return errNotFound("no such player %s", id)
	}
	if p.Bankrupt {
		return errInvalidTurn("%s is bankrupt", p.Name)
	}
	if r.current().Id != id {
		return errInvalidTurn("it is not your turn")
	}
	return nil
}

// advanceTurn moves to the next non-bankrupt player cyclically.
func (r *Room) advanceTurn() {
	r.rolled = false
	for i := 0; i < len(r.Players); i++ {
		r.Turn = (r.Turn + 1) % len(r.Players)
		if !r.current().Bankrupt {
			return
		}
	}
	panic("game: no non-bankrupt player left to take the turn")
}

func (r *Room) logf(format string, args ...interface{}) {
	r.Log = append(r.Log, fmt.Sprintf(format, args...))
}

// Snapshot renders the full client-facing state. The transport layer
// broadcasts it after every mutation; the engine itself does no I/O.
func (r *Room) Snapshot() models.RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := models.RoomSnapshot{
		Id:       r.Id,
		LastRoll: r.LastRoll,
		Started:  r.Started,
		Finished: r.Finished,
		Winner:   r.Winner,
	}
	for _, p := range r.Players {
		dto := models.PlayerDto{
			Id:       p.Id,
			Username: p.Name,
			Color:    p.Color,
			Balance:  p.Money,
			Pos:      p.Pos,
			Jail:     p.InJail,
			Bankrupt: p.Bankrupt,
		}
		for i, t := range r.Board {
			if o, ok := t.(models.Ownable); ok && o.GetOwner() == p.Id {
				dto.Properties = append(dto.Properties, i)
			}
		}
		snap.Players = append(snap.Players, dto)
	}
	for _, t := range r.Board {
		snap.Tiles = append(snap.Tiles, models.TileToDto(t))
	}
	if r.Started && !r.Finished {
		snap.Turn = r.current().Id
	}
	tail := r.Log
	if len(tail) > LogTail {
		tail = tail[len(tail)-LogTail:]
	}
	snap.Log = append(snap.Log, tail...)
	switch in := r.Interruption.(type) {
	case *Auction:
		snap.Auction = &models.AuctionDto{
			Tile:         in.Tile,
			Bid:          in.Bid,
			Bidder:       in.Bidder,
			Next:         in.currentBidder(),
			Participants: append([]string(nil), in.Participants...),
		}
	case *Trade:
		snap.Trade = &models.TradeDto{
			From:  in.From,
			To:    in.To,
			Tile:  in.Tile,
			Money: in.Money,
			Note:  in.Note,
		}
	}
	return snap
}
