package models

// RoomSnapshot is the full state pushed to every client after a mutation.
// The engine builds it, the socket layer relays it and nothing else.
type RoomSnapshot struct {
	Id       string      `json:"id"`
	Players  []PlayerDto `json:"players"` // in turn order
	Tiles    []TileDto   `json:"tiles"`
	Turn     string      `json:"turn"` // player id holding the turn
	LastRoll int         `json:"last_roll"`
	Log      []string    `json:"log"` // most recent entries, oldest first
	Auction  *AuctionDto `json:"auction,omitempty"`
	Trade    *TradeDto   `json:"trade,omitempty"`
	Started  bool        `json:"started"`
	Finished bool        `json:"finished"`
	Winner   string      `json:"winner,omitempty"`
}

type TileDto struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Group     string `json:"group,omitempty"`
	Price     int    `json:"price,omitempty"`
	Rent      int    `json:"rent,omitempty"`
	Houses    int    `json:"houses,omitempty"`
	HouseCost int    `json:"housecost,omitempty"`
	Owner     string `json:"owner,omitempty"`
	Mortgaged bool   `json:"mortgaged,omitempty"`
	Amount    int    `json:"amount,omitempty"`
}

type AuctionDto struct {
	Tile         int      `json:"tile"`
	Bid          int      `json:"bid"`
	Bidder       string   `json:"bidder,omitempty"`
	Next         string   `json:"next"` // whose bid/pass decision is pending
	Participants []string `json:"participants"`
}

type TradeDto struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Tile  int    `json:"tile"`
	Money int    `json:"money"`
	Note  string `json:"note,omitempty"`
}

func TileToDto(t Tile) TileDto {
	switch tile := t.(type) {
	case *Start:
		return TileDto{Kind: "start", Name: tile.Label()}
	case *Property:
		return TileDto{
			Kind:      "property",
			Name:      tile.Name,
			Group:     tile.Group,
			Price:     tile.Price,
			Rent:      tile.Rents[0],
			Houses:    tile.Houses,
			HouseCost: tile.HouseCost,
			Owner:     tile.Owner,
			Mortgaged: tile.Mortgaged,
		}
	case *Railroad:
		return TileDto{Kind: "railroad", Name: tile.Name, Price: tile.Price, Owner: tile.Owner}
	case *Utility:
		return TileDto{Kind: "utility", Name: tile.Name, Price: tile.Price, Owner: tile.Owner}
	case *Tax:
		return TileDto{Kind: "tax", Name: tile.Name, Amount: tile.Amount}
	case *Chance:
		return TileDto{Kind: "chance", Name: tile.Label()}
	case *Force:
		return TileDto{Kind: "force", Name: tile.Label()}
	case *Jail:
		return TileDto{Kind: "jail", Name: tile.Label()}
	case *GoToJail:
		return TileDto{Kind: "go-to-jail", Name: tile.Label()}
	case *Empty:
		return TileDto{Kind: "empty", Name: tile.Name}
	}
	panic("unknown tile kind")
}
