package game

import (
	"github.com/example/landlord-backend/app/models"
)

// Trade is a pending two-party property-for-money offer. Unlike an
// auction it does not block ordinary turn actions, but while it is pending
// no other interruption can start.
type Trade struct {
	From  string // proposer, owner of the tile when the offer was made
	To    string
	Tile  int
	Money int // paid by To on acceptance
	Note  string
}

func (t *Trade) interruption() {}

// ProposeTrade makes an offer: the target pays money and receives the tile.
func (r *Room) ProposeTrade(playerId, targetId string, tileIdx, money int, note string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkTurn(playerId); err != nil {
		return err
	}
	if r.Interruption != nil {
		return errInvalidState("another offer is pending")
	}
	if targetId == playerId {
		return errInvalidArgument("cannot trade with yourself")
	}
	target := r.player(targetId)
	if target == nil {
		return errNotFound("no such player %s", targetId)
	}
	if money < 0 {
		return errInvalidArgument("money must not be negative")
	}
	if tileIdx < 0 || tileIdx >= len(r.Board) {
		return errNotFound("no tile %d", tileIdx)
	}
	tile, ok := r.Board[tileIdx].(models.Ownable)
	if !ok {
		return errInvalidState("%s cannot be traded", r.Board[tileIdx].Label())
	}
	if tile.GetOwner() != playerId {
		return errInvalidState("you do not own %s", tile.Label())
	}
	if prop, ok := tile.(*models.Property); ok {
		if prop.Houses > 0 {
			return errInvalidState("%s has houses on it", prop.Name)
		}
		if prop.Mortgaged {
			return errInvalidState("%s is mortgaged", prop.Name)
		}
	}
	p := r.player(playerId)
	r.Interruption = &Trade{From: playerId, To: targetId, Tile: tileIdx, Money: money, Note: note}
	r.logf("%s offers %s to %s for %d", p.Name, tile.Label(), target.Name, money)
	return nil
}

// AcceptTrade settles the offer atomically: money and title move together.
// An offer whose tile changed hands since it was made is stale; it fails
// with InvalidState and is cleared.
func (r *Room) AcceptTrade(playerId string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.trade()
	if err != nil {
		return err
	}
	if t.To != playerId {
		return errInvalidTurn("this offer is not addressed to you")
	}
	tile := r.Board[t.Tile].(models.Ownable)
	if tile.GetOwner() != t.From {
		r.Interruption = nil
		r.logf("trade for %s dropped, ownership changed", tile.Label())
		return errInvalidState("%s no longer belongs to the proposer", tile.Label())
	}
	target := r.player(playerId)
	if target.Money < t.Money {
		return errInsufficientFunds("the trade costs %d, you have %d", t.Money, target.Money)
	}
	proposer := r.player(t.From)
	target.Money -= t.Money
	proposer.Money += t.Money
	tile.SetOwner(target.Id)
	r.Interruption = nil
	r.logf("%s accepts: %s goes to %s for %d", target.Name, tile.Label(), target.Name, t.Money)
	return nil
}

// RejectTrade clears the offer with no economic effect.
func (r *Room) RejectTrade(playerId string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, err := r.trade()
	if err != nil {
		return err
	}
	if t.To != playerId {
		return errInvalidTurn("this offer is not addressed to you")
	}
	r.Interruption = nil
	r.logf("%s rejects the trade", r.player(playerId).Name)
	return nil
}

func (r *Room) trade() (*Trade, *Error) {
	if !r.Started {
		return nil, errInvalidTurn("game has not started")
	}
	if r.Finished {
		return nil, errInvalidState("game is over")
	}
	t, ok := r.Interruption.(*Trade)
	if !ok {
		return nil, errInvalidState("no trade is pending")
	}
	return t, nil
}
