package game

import (
	"github.com/example/landlord-backend/app/models"
)

var railroadRents = [4]int{25, 50, 100, 200}

// Buy purchases the unowned tile the caller is standing on.
func (r *Room) Buy(playerId string) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkTurn(playerId); err != nil {
		return err
	}
	p := r.player(playerId)
	tile, ok := r.Board[p.Pos].(models.Ownable)
	if !ok {
		return errInvalidState("%s cannot be bought", r.Board[p.Pos].Label())
	}
	if tile.GetOwner() != "" {
		return errInvalidState("%s is already owned", tile.Label())
	}
	if p.Money < tile.GetPrice() {
		return errInsufficientFunds("%s costs %d, you have %d", tile.Label(), tile.GetPrice(), p.Money)
	}
	p.Money -= tile.GetPrice()
	tile.SetOwner(p.Id)
	r.logf("%s buys %s for %d", p.Name, tile.Label(), tile.GetPrice())
	return nil
}

// Build adds one house to the caller's property under the even-build rule.
func (r *Room) Build(playerId string, tileIdx int) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkTurn(playerId); err != nil {
		return err
	}
	prop, err := r.property(tileIdx)
	if err != nil {
		return err
	}
	p := r.player(playerId)
	if prop.Owner != p.Id {
		return errInvalidState("you do not own %s", prop.Name)
	}
	if prop.Mortgaged {
		return errInvalidState("%s is mortgaged", prop.Name)
	}
	if !r.ownsGroup(p.Id, prop.Group) {
		return errInvalidState("you must own the whole %s group to build", prop.Group)
	}
	if prop.Houses >= 5 {
		return errInvalidState("%s is fully built", prop.Name)
	}
	if min, _ := r.groupLevels(prop.Group); prop.Houses != min {
		return errInvalidState("build evenly: %s is not at the group minimum", prop.Name)
	}
	if p.Money < prop.HouseCost {
		return errInsufficientFunds("a house on %s costs %d, you have %d", prop.Name, prop.HouseCost, p.Money)
	}
	p.Money -= prop.HouseCost
	prop.Houses++
	r.logf("%s builds on %s (level %d)", p.Name, prop.Name, prop.Houses)
	return nil
}

// Demolish removes one house, refunding half its cost.
func (r *Room) Demolish(playerId string, tileIdx int) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkTurn(playerId); err != nil {
		return err
	}
	prop, err := r.property(tileIdx)
	if err != nil {
		return err
	}
	p := r.player(playerId)
	if prop.Owner != p.Id {
		return errInvalidState("you do not own %s", prop.Name)
	}
	if prop.Houses == 0 {
		return errInvalidState("%s has no houses", prop.Name)
	}
	if _, max := r.groupLevels(prop.Group); prop.Houses != max {
		return errInvalidState("demolish evenly: %s is not at the group maximum", prop.Name)
	}
	p.Money += prop.HouseCost / 2
	prop.Houses--
	r.logf("%s demolishes on %s (level %d)", p.Name, prop.Name, prop.Houses)
	return nil
}

// Mortgage pledges an unbuilt property for half its price.
func (r *Room) Mortgage(playerId string, tileIdx int) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkTurn(playerId); err != nil {
		return err
	}
	prop, err := r.property(tileIdx)
	if err != nil {
		return err
	}
	p := r.player(playerId)
	if prop.Owner != p.Id {
		return errInvalidState("you do not own %s", prop.Name)
	}
	if prop.Houses > 0 {
		return errInvalidState("demolish the houses on %s first", prop.Name)
	}
	if prop.Mortgaged {
		return errInvalidState("%s is already mortgaged", prop.Name)
	}
	prop.Mortgaged = true
	p.Money += prop.Price / 2
	r.logf("%s mortgages %s for %d", p.Name, prop.Name, prop.Price/2)
	return nil
}

// Unmortgage redeems a mortgaged property at a 10% premium over the loan.
func (r *Room) Unmortgage(playerId string, tileIdx int) *Error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkTurn(playerId); err != nil {
		return err
	}
	prop, err := r.property(tileIdx)
	if err != nil {
		return err
	}
	p := r.player(playerId)
	if prop.Owner != p.Id {
		return errInvalidState("you do not own %s", prop.Name)
	}
	if !prop.Mortgaged {
		return errInvalidState("%s is not mortgaged", prop.Name)
	}
	cost := (prop.Price*55 + 50) / 100 // round(price * 0.55)
	if p.Money < cost {
		return errInsufficientFunds("redeeming %s costs %d, you have %d", prop.Name, cost, p.Money)
	}
	p.Money -= cost
	prop.Mortgaged = false
	r.logf("%s unmortgages %s for %d", p.Name, prop.Name, cost)
	return nil
}

func (r *Room) property(tileIdx int) (*models.Property, *Error) {
	if tileIdx < 0 || tileIdx >= len(r.Board) {
		return nil, errNotFound("no tile %d", tileIdx)
	}
	prop, ok := r.Board[tileIdx].(*models.Property)
	if !ok {
		return nil, errInvalidState("%s is not a property", r.Board[tileIdx].Label())
	}
	return prop, nil
}

// ownsGroup reports whether owner holds every property in the color group.
func (r *Room) ownsGroup(ownerId, group string) bool {
	for _, t := range r.Board {
		if prop, ok := t.(*models.Property); ok && prop.Group == group && prop.Owner != ownerId {
			return false
		}
	}
	return true
}

func (r *Room) groupLevels(group string) (min, max int) {
	min, max = 5, 0
	for _, t := range r.Board {
		if prop, ok := t.(*models.Property); ok && prop.Group == group {
			if prop.Houses < min {
				min = prop.Houses
			}
			if prop.Houses > max {
				max = prop.Houses
			}
		}
	}
	return min, max
}

func (r *Room) railroadsOwned(ownerId string) int {
	n := 0
	for _, t := range r.Board {
		if rr, ok := t.(*models.Railroad); ok && rr.Owner == ownerId {
			n++
		}
	}
	return n
}

func (r *Room) utilitiesOwned(ownerId string) int {
	n := 0
	for _, t := range r.Board {
		if u, ok := t.(*models.Utility); ok && u.Owner == ownerId {
			n++
		}
	}
	return n
}

// payRent moves rent from payer to the tile's owner. No-op when the tile is
// unowned, mortgaged, or owned by the payer or a bankrupt player.
func (r *Room) payRent(payer *models.Player, tileIdx int) {
	var ownerId string
	var rent int

	switch tile := r.Board[tileIdx].(type) {
	case *models.Property:
		if tile.Mortgaged {
			return
		}
		ownerId = tile.Owner
		rent = tile.Rents[0]
		if tile.Houses > 0 {
			rent = tile.Rents[tile.Houses]
		} else if r.ownsGroup(ownerId, tile.Group) {
			rent *= 2
		}
	case *models.Railroad:
		ownerId = tile.Owner
		if ownerId != "" {
			rent = railroadRents[r.railroadsOwned(ownerId)-1]
		}
	case *models.Utility:
		ownerId = tile.Owner
		mult := 4
		if r.utilitiesOwned(ownerId) == 2 {
			mult = 10
		}
		roll := r.LastRoll
		if roll < 2 {
			roll = 2
		}
		rent = mult * roll
	default:
		return
	}

	if ownerId == "" || ownerId == payer.Id {
		return
	}
	owner := r.player(ownerId)
	if owner == nil || owner.Bankrupt {
		return
	}
	payer.Money -= rent
	owner.Money += rent
	r.logf("%s pays %d rent to %s for %s", payer.Name, rent, owner.Name, r.Board[tileIdx].Label())
}

// settle is the bankruptcy/win check run after every money-affecting
// action. It marks over-drawn players bankrupt, releases their tiles, drops
// them from a pending auction, cancels a trade they are party to, and
// finishes the room when a single player survives.
func (r *Room) settle() {
	for _, p := range r.Players {
		if p.Bankrupt || p.Money >= 0 {
			continue
		}
		p.Bankrupt = true
		for _, t := range r.Board {
			o, ok := t.(models.Ownable)
			if !ok || o.GetOwner() != p.Id {
				continue
			}
			o.SetOwner("")
			if prop, ok := t.(*models.Property); ok {
				prop.Houses = 0
				prop.Mortgaged = false
			}
		}
		r.logf("%s is bankrupt", p.Name)

		switch in := r.Interruption.(type) {
		case *Auction:
			in.drop(p.Id)
		case *Trade:
			if in.From == p.Id || in.To == p.Id {
				r.Interruption = nil
				r.logf("trade cancelled: %s is bankrupt", p.Name)
			}
		}
	}

	if _, ok := r.Interruption.(*Auction); ok {
		r.resolveAuction()
	}

	if !r.Started || r.Finished {
		return
	}
	if alive := r.alive(); len(alive) == 1 {
		r.Finished = true
		r.Winner = alive[0].Id
		r.Interruption = nil
		r.logf("%s wins the game", alive[0].Name)
		return
	}
	if r.current().Bankrupt {
		r.advanceTurn()
	}
}
