package models

// Tile is one board square. Exactly one concrete kind per square; the
// board array itself never changes length or order after creation.
type Tile interface {
	Label() string
	tile()
}

// Ownable is the subset of tiles that can be bought, auctioned and traded.
type Ownable interface {
	Tile
	GetOwner() string
	SetOwner(id string)
	GetPrice() int
}

type Start struct{}

type Property struct {
	Name      string
	Group     string
	Price     int
	Rents     [6]int // index = house level, 0 is the unbuilt base rent
	HouseCost int
	Houses    int
	Mortgaged bool
	Owner     string // player id, "" when unowned
}

type Railroad struct {
	Name  string
	Price int
	Owner string
}

type Utility struct {
	Name  string
	Price int
	Owner string
}

type Tax struct {
	Name   string
	Amount int
}

type Chance struct{}

type Force struct{}

type Jail struct{}

type GoToJail struct{}

type Empty struct {
	Name string
}

func (t *Start) Label() string    { return "Start" }
func (t *Property) Label() string { return t.Name }
func (t *Railroad) Label() string { return t.Name }
func (t *Utility) Label() string  { return t.Name }
func (t *Tax) Label() string      { return t.Name }
func (t *Chance) Label() string   { return "Chance" }
func (t *Force) Label() string    { return "Force" }
func (t *Jail) Label() string     { return "Jail" }
func (t *GoToJail) Label() string { return "Go To Jail" }
func (t *Empty) Label() string    { return t.Name }

func (t *Start) tile()    {}
func (t *Property) tile() {}
func (t *Railroad) tile() {}
func (t *Utility) tile()  {}
func (t *Tax) tile()      {}
func (t *Chance) tile()   {}
func (t *Force) tile()    {}
func (t *Jail) tile()     {}
func (t *GoToJail) tile() {}
func (t *Empty) tile()    {}

func (t *Property) GetOwner() string   { return t.Owner }
func (t *Property) SetOwner(id string) { t.Owner = id }
func (t *Property) GetPrice() int      { return t.Price }

func (t *Railroad) GetOwner() string   { return t.Owner }
func (t *Railroad) SetOwner(id string) { t.Owner = id }
func (t *Railroad) GetPrice() int      { return t.Price }

func (t *Utility) GetOwner() string   { return t.Owner }
func (t *Utility) SetOwner(id string) { t.Owner = id }
func (t *Utility) GetPrice() int      { return t.Price }

// Card is one chance/force deck entry.
type Card interface {
	Text() string
	card()
}

type Relocate struct {
	Info   string
	Target int // board index
}

type AdjustMoney struct {
	Info  string
	Delta int
}

type SendToJail struct {
	Info string
}

func (c *Relocate) Text() string    { return c.Info }
func (c *AdjustMoney) Text() string { return c.Info }
func (c *SendToJail) Text() string  { return c.Info }

func (c *Relocate) card()    {}
func (c *AdjustMoney) card() {}
func (c *SendToJail) card()  {}
