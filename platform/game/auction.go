package game

import (
	"github.com/example/landlord-backend/app/models"
)

// Auction is the bidding sub-protocol over one unowned tile. While active
// it blocks every ordinary turn action room-wide; bid/pass are the only
// legal moves, one pending decision per participant per rotation.
type Auction struct {
	Tile         int
	Participants []string // ordered, shrinks as players pass or go bankrupt
	Bid          int
	Bidder       string // highest bidder, "" before the first bid
	Pointer      int    // rotation index into Participants
}

func (a *Auction) interruption() {}

func (a *Auction) currentBidder() string {
	if len(a.Participants) == 0 {
		return ""
	}
	if a.Pointer < 0 || a.Pointer >= len(a.Participants) {
		panic("game: auction rotation pointer out of range")
	}
	return a.Participants[a.Pointer]
}

// drop removes a participant out of rotation order (bankruptcy).
func (a *Auction) drop(playerId string) {
	for i, id := range a.Participants {
		if id != playerId {
			continue
		}
		a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
		if i < a.Pointer {
			a.Pointer--
		}
		if len(a.Participants) > 0 {
			a.Pointer %= len(a.Participants)
		}
		return
	}
}

// DeclineBuy puts the unowned tile under the turn holder up for auction
// among all non-bankrupt players.
func (r *Room) DeclineBuy(playerId string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkTurn(playerId); err != nil {
		return err
	}
	if r.Interruption != nil {
		return errInvalidState("another offer is pending")
	}
	p := r.player(playerId)
	tile, ok := r.Board[p.Pos].(models.Ownable)
	if !ok {
		return errInvalidState("%s cannot be auctioned", r.Board[p.Pos].Label())
	}
	if tile.GetOwner() != "" {
		return errInvalidState("%s is already owned", tile.Label())
	}
	var ids []string
	for _, q := range r.alive() {
		ids = append(ids, q.Id)
	}
	r.Interruption = &Auction{Tile: p.Pos, Participants: ids}
	r.logf("%s declines to buy %s, auction begins", p.Name, tile.Label())
	return nil
}

// Bid raises the standing bid by increment and passes the rotation on.
func (r *Room) Bid(playerId string, increment int) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.auction()
	if err != nil {
		return err
	}
	if a.currentBidder() != playerId {
		return errInvalidTurn("it is not your bid")
	}
	if increment <= 0 {
		return errInvalidArgument("bid increment must be positive")
	}
	p := r.player(playerId)
	if p.Money < a.Bid+increment {
		return errInsufficientFunds("bidding %d with %d in hand", a.Bid+increment, p.Money)
	}
	a.Bid += increment
	a.Bidder = playerId
	a.Pointer = (a.Pointer + 1) % len(a.Participants)
	r.logf("%s bids %d for %s", p.Name, a.Bid, r.Board[a.Tile].Label())
	r.resolveAuction()
	return nil
}

// Pass drops the caller from the rotation.
func (r *Room) Pass(playerId string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.auction()
	if err != nil {
		return err
	}
	if a.currentBidder() != playerId {
		return errInvalidTurn("it is not your bid")
	}
	a.drop(playerId)
	r.logf("%s passes", r.player(playerId).Name)
	r.resolveAuction()
	return nil
}

func (r *Room) auction() (*Auction, *Error) {
	if !r.Started {
		return nil, errInvalidTurn("game has not started")
	}
	if r.Finished {
		return nil, errInvalidState("game is over")
	}
	a, ok := r.Interruption.(*Auction)
	if !ok {
		return nil, errInvalidState("no auction in progress")
	}
	return a, nil
}

// resolveAuction concludes or cancels the pending auction once the
// rotation has thinned out enough. A sole remaining participant only wins
// if they are also the highest bidder; if their funds have dropped below
// the bid in the meantime the sale fails and the tile stays unowned.
func (r *Room) resolveAuction() {
	a, ok := r.Interruption.(*Auction)
	if !ok {
		return
	}
	if len(a.Participants) == 0 {
		r.Interruption = nil
		r.logf("auction for %s cancelled, no sale", r.Board[a.Tile].Label())
		return
	}
	if len(a.Participants) != 1 || a.Bidder == "" || a.Bidder != a.Participants[0] {
		return
	}
	r.Interruption = nil
	winner := r.player(a.Bidder)
	tile := r.Board[a.Tile].(models.Ownable)
	if winner.Money < a.Bid {
		r.logf("auction sale of %s to %s failed, funds short of %d", tile.Label(), winner.Name, a.Bid)
		return
	}
	winner.Money -= a.Bid
	tile.SetOwner(winner.Id)
	r.logf("%s wins the auction for %s at %d", winner.Name, tile.Label(), a.Bid)
}
