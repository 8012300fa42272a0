package game

import (
	"github.com/example/landlord-backend/app/models"
)

// Roll resolves the current player's dice throw: jail handling, movement
// with the pass-start bonus, then the landed tile's effect. The turn stays
// with the roller afterwards so they can buy/build/mortgage, except for
// jail outcomes, which advance the turn on their own.
func (r *Room) Roll(playerId string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkTurn(playerId); err != nil {
		return err
	}
	if r.rolled {
		return errInvalidState("you have already rolled the dice")
	}
	p := r.player(playerId)
	d1, d2 := r.dice()
	r.LastRoll = d1 + d2
	r.logf("%s rolled %d and %d", p.Name, d1, d2)

	if p.InJail {
		if d1 == d2 {
			p.InJail = false
			p.JailTurns = 0
			r.logf("%s rolled doubles and is released from jail", p.Name)
		} else {
			p.JailTurns++
			if p.JailTurns >= MaxJailTurns {
				p.InJail = false
				p.JailTurns = 0
				p.Money -= JailFine
				r.logf("%s pays the %d jail fine and is released", p.Name, JailFine)
			} else {
				r.logf("%s stays in jail (%d/%d)", p.Name, p.JailTurns, MaxJailTurns)
			}
		}
		r.advanceTurn()
		r.settle()
		return nil
	}

	old := p.Pos
	p.Pos = (p.Pos + d1 + d2) % len(r.Board)
	if p.Pos < old {
		p.Money += PassStartBonus
		r.logf("%s passed start and collects %d", p.Name, PassStartBonus)
	}
	r.logf("%s lands on %s", p.Name, r.Board[p.Pos].Label())
	r.rolled = true
	r.resolveTile(p)
	r.settle()
	return nil
}

// EndTurn hands the turn to the next non-bankrupt player.
func (r *Room) EndTurn(playerId string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkTurn(playerId); err != nil {
		return err
	}
	if !r.rolled {
		return errInvalidState("you must roll the dice first")
	}
	r.advanceTurn()
	r.settle()
	if !r.Finished {
		r.logf("it is %s's turn", r.current().Name)
	}
	return nil
}

func (r *Room) resolveTile(p *models.Player) {
	switch tile := r.Board[p.Pos].(type) {
	case *models.Property, *models.Railroad, *models.Utility:
		r.payRent(p, p.Pos)
	case *models.Chance:
		r.drawCard(p, r.chance)
	case *models.Force:
		r.drawCard(p, r.force)
	case *models.Tax:
		p.Money -= tile.Amount
		r.logf("%s pays %d %s", p.Name, tile.Amount, tile.Name)
	case *models.GoToJail:
		p.Pos = r.jailPos
		p.InJail = true
		p.JailTurns = 0
		r.logf("%s is sent to jail", p.Name)
	}
}

func (r *Room) drawCard(p *models.Player, deck []models.Card) {
	card := deck[r.rng.Intn(len(deck))]
	r.logf("%s draws: %s", p.Name, card.Text())
	switch c := card.(type) {
	case *models.Relocate:
		if c.Target < p.Pos {
			p.Money += PassStartBonus
			r.logf("%s passed start and collects %d", p.Name, PassStartBonus)
		}
		p.Pos = c.Target
	case *models.AdjustMoney:
		p.Money += c.Delta
	case *models.SendToJail:
		p.Pos = r.jailPos
		p.InJail = true
		p.JailTurns = 0
	}
}
