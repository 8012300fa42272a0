package board

import (
	"github.com/example/landlord-backend/app/models"
)

// Size is the fixed ring length.
const Size = 40

// JailIndex is where jailed tokens sit.
const JailIndex = 10

func prop(name, group string, price, houseCost int, rents [6]int) models.Tile {
	return &models.Property{
		Name:      name,
		Group:     group,
		Price:     price,
		HouseCost: houseCost,
		Rents:     rents,
	}
}

// Build returns a fresh mutable board instance. Each room gets its own copy;
// the static layout never changes.
func Build() []models.Tile {
	return []models.Tile{
		&models.Start{},
		prop("Mediterranean Avenue", "brown", 60, 50, [6]int{2, 10, 30, 90, 160, 250}),
		&models.Force{},
		prop("Baltic Avenue", "brown", 60, 50, [6]int{4, 20, 60, 180, 320, 450}),
		&models.Tax{Name: "Income Tax", Amount: 200},
		&models.Railroad{Name: "Reading Railroad", Price: 200},
		prop("Oriental Avenue", "lightblue", 100, 50, [6]int{6, 30, 90, 270, 400, 550}),
		&models.Chance{},
		prop("Vermont Avenue", "lightblue", 100, 50, [6]int{6, 30, 90, 270, 400, 550}),
		prop("Connecticut Avenue", "lightblue", 120, 50, [6]int{8, 40, 100, 300, 450, 600}),
		&models.Jail{},
		prop("St. Charles Place", "pink", 140, 100, [6]int{10, 50, 150, 450, 625, 750}),
		&models.Utility{Name: "Electric Company", Price: 150},
		prop("States Avenue", "pink", 140, 100, [6]int{10, 50, 150, 450, 625, 750}),
		prop("Virginia Avenue", "pink", 160, 100, [6]int{12, 60, 180, 500, 700, 900}),
		&models.Railroad{Name: "Pennsylvania Railroad", Price: 200},
		prop("St. James Place", "orange", 180, 100, [6]int{14, 70, 200, 550, 750, 950}),
		&models.Force{},
		prop("Tennessee Avenue", "orange", 180, 100, [6]int{14, 70, 200, 550, 750, 950}),
		prop("New York Avenue", "orange", 200, 100, [6]int{16, 80, 220, 600, 800, 1000}),
		&models.Empty{Name: "Free Parking"},
		prop("Kentucky Avenue", "red", 220, 150, [6]int{18, 90, 250, 700, 875, 1050}),
		&models.Chance{},
		prop("Indiana Avenue", "red", 220, 150, [6]int{18, 90, 250, 700, 875, 1050}),
		prop("Illinois Avenue", "red", 240, 150, [6]int{20, 100, 300, 750, 925, 1100}),
		&models.Railroad{Name: "B&O Railroad", Price: 200},
		prop("Atlantic Avenue", "yellow", 260, 150, [6]int{22, 110, 330, 800, 975, 1150}),
		prop("Ventnor Avenue", "yellow", 260, 150, [6]int{22, 110, 330, 800, 975, 1150}),
		&models.Utility{Name: "Water Works", Price: 150},
		prop("Marvin Gardens", "yellow", 280, 150, [6]int{24, 120, 360, 850, 1025, 1200}),
		&models.GoToJail{},
		prop("Pacific Avenue", "green", 300, 200, [6]int{26, 130, 390, 900, 1100, 1275}),
		prop("North Carolina Avenue", "green", 300, 200, [6]int{26, 130, 390, 900, 1100, 1275}),
		&models.Force{},
		prop("Pennsylvania Avenue", "green", 320, 200, [6]int{28, 150, 450, 1000, 1200, 1400}),
		&models.Railroad{Name: "Short Line", Price: 200},
		&models.Chance{},
		prop("Park Place", "darkblue", 350, 200, [6]int{35, 175, 500, 1100, 1300, 1500}),
		&models.Tax{Name: "Luxury Tax", Amount: 100},
		prop("Boardwalk", "darkblue", 400, 200, [6]int{50, 200, 600, 1400, 1700, 2000}),
	}
}

// ChanceDeck returns the chance card deck. Decks are draw-with-replacement,
// so rooms can share the returned slice but must not mutate it.
func ChanceDeck() []models.Card {
	return []models.Card{
		&models.Relocate{Info: "Advance to Start", Target: 0},
		&models.Relocate{Info: "Take a ride on the Reading Railroad", Target: 5},
		&models.Relocate{Info: "Advance to Illinois Avenue", Target: 24},
		&models.AdjustMoney{Info: "Bank pays you a dividend of $50", Delta: 50},
		&models.AdjustMoney{Info: "Speeding fine, pay $15", Delta: -15},
		&models.AdjustMoney{Info: "Your building loan matures, collect $150", Delta: 150},
		&models.SendToJail{Info: "Go directly to Jail"},
	}
}

// ForceDeck returns the forced-event (community) deck.
func ForceDeck() []models.Card {
	return []models.Card{
		&models.AdjustMoney{Info: "Bank error in your favor, collect $200", Delta: 200},
		&models.AdjustMoney{Info: "Doctor's fees, pay $50", Delta: -50},
		&models.AdjustMoney{Info: "Income tax refund, collect $20", Delta: 20},
		&models.AdjustMoney{Info: "Hospital fees, pay $100", Delta: -100},
		&models.Relocate{Info: "Advance to Start", Target: 0},
		&models.SendToJail{Info: "Go directly to Jail"},
	}
}
