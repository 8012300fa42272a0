package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/landlord-backend/app/models"
)

func TestBuy(t *testing.T) {
	t.Run("debits the price and sets the owner", func(t *testing.T) {
		r := testRoom(2)
		r.Players[0].Pos = 1 // Mediterranean, 60

		require.Nil(t, r.Buy("p1"))
		assert.Equal(t, StartingMoney-60, r.Players[0].Money)
		assert.Equal(t, "p1", r.prop(1).Owner)
	})

	t.Run("insufficient funds leaves state unchanged", func(t *testing.T) {
		r := testRoom(2)
		r.Players[0].Pos = 39 // Boardwalk, 400
		r.Players[0].Money = 399

		err := r.Buy("p1")
		require.NotNil(t, err)
		assert.Equal(t, InsufficientFunds, err.Kind)
		assert.Equal(t, 399, r.Players[0].Money)
		assert.Equal(t, "", r.prop(39).Owner)
	})

	t.Run("owned tile", func(t *testing.T) {
		r := testRoom(2)
		r.Players[0].Pos = 1
		r.prop(1).Owner = "p2"

		err := r.Buy("p1")
		require.NotNil(t, err)
		assert.Equal(t, InvalidState, err.Kind)
	})

	t.Run("unpurchasable tile", func(t *testing.T) {
		r := testRoom(2)
		r.Players[0].Pos = 20 // Free Parking

		err := r.Buy("p1")
		require.NotNil(t, err)
		assert.Equal(t, InvalidState, err.Kind)
	})
}

func TestPropertyRent(t *testing.T) {
	t.Run("base rent without the full group", func(t *testing.T) {
		r := testRoom(2)
		r.prop(1).Owner = "p1"

		r.payRent(r.Players[1], 1)
		assert.Equal(t, StartingMoney-2, r.Players[1].Money)
		assert.Equal(t, StartingMoney+2, r.Players[0].Money)
	})

	t.Run("full group doubles unbuilt base rent", func(t *testing.T) {
		r := testRoom(2)
		r.prop(1).Owner = "p1"
		r.prop(3).Owner = "p1"

		r.payRent(r.Players[1], 1)
		assert.Equal(t, StartingMoney-4, r.Players[1].Money)
	})

	t.Run("house level indexes the rent table", func(t *testing.T) {
		r := testRoom(2)
		r.prop(1).Owner = "p1"
		r.prop(1).Houses = 3

		r.payRent(r.Players[1], 1)
		assert.Equal(t, StartingMoney-90, r.Players[1].Money)
	})

	t.Run("no rent on own, unowned or mortgaged tiles", func(t *testing.T) {
		r := testRoom(2)
		r.payRent(r.Players[1], 1) // unowned
		r.prop(1).Owner = "p2"
		r.payRent(r.Players[1], 1) // own tile
		r.prop(1).Owner = "p1"
		r.prop(1).Mortgaged = true
		r.payRent(r.Players[1], 1) // mortgaged
		assert.Equal(t, StartingMoney, r.Players[1].Money)
	})

	t.Run("no rent to a bankrupt owner", func(t *testing.T) {
		r := testRoom(3)
		r.prop(1).Owner = "p3"
		r.Players[2].Bankrupt = true
		r.payRent(r.Players[1], 1)
		assert.Equal(t, StartingMoney, r.Players[1].Money)
	})
}

func TestRailroadRent(t *testing.T) {
	r := testRoom(2)
	want := []int{25, 50, 100, 200}
	for i, idx := range []int{5, 15, 25, 35} {
		r.Board[idx].(models.Ownable).SetOwner("p1")
		before := r.Players[1].Money
		r.payRent(r.Players[1], 5)
		assert.Equal(t, want[i], before-r.Players[1].Money, "with %d railroads", i+1)
	}
}

func TestUtilityRent(t *testing.T) {
	cases := []struct {
		name     string
		both     bool
		lastRoll int
		want     int
	}{
		{"one utility", false, 7, 28},
		{"both utilities", true, 7, 70},
		{"roll floor of two", false, 1, 8},
		{"no roll yet", false, 0, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := testRoom(2)
			r.Board[12].(models.Ownable).SetOwner("p1")
			if tc.both {
				r.Board[28].(models.Ownable).SetOwner("p1")
			}
			r.LastRoll = tc.lastRoll
			r.payRent(r.Players[1], 12)
			assert.Equal(t, StartingMoney-tc.want, r.Players[1].Money)
		})
	}
}

func ownPinkGroup(r *Room) {
	for _, idx := range []int{11, 13, 14} {
		r.prop(idx).Owner = "p1"
	}
}

func TestEvenBuild(t *testing.T) {
	t.Run("requires the full group", func(t *testing.T) {
		r := testRoom(2)
		r.prop(11).Owner = "p1"

		err := r.Build("p1", 11)
		require.NotNil(t, err)
		assert.Equal(t, InvalidState, err.Kind)
	})

	t.Run("builds only at the group minimum", func(t *testing.T) {
		r := testRoom(2)
		ownPinkGroup(r)

		require.Nil(t, r.Build("p1", 11))
		assert.Equal(t, 1, r.prop(11).Houses)
		assert.Equal(t, StartingMoney-100, r.Players[0].Money)

		err := r.Build("p1", 11) // 13 and 14 still at 0
		require.NotNil(t, err)
		assert.Equal(t, InvalidState, err.Kind)

		require.Nil(t, r.Build("p1", 13))
		require.Nil(t, r.Build("p1", 14))
		assert.Nil(t, r.Build("p1", 11))
	})

	t.Run("level cap is five", func(t *testing.T) {
		r := testRoom(2)
		ownPinkGroup(r)
		for _, idx := range []int{11, 13, 14} {
			r.prop(idx).Houses = 5
		}
		err := r.Build("p1", 11)
		require.NotNil(t, err)
		assert.Equal(t, InvalidState, err.Kind)
	})

	t.Run("mortgaged tile cannot be built on", func(t *testing.T) {
		r := testRoom(2)
		ownPinkGroup(r)
		r.prop(11).Mortgaged = true
		err := r.Build("p1", 11)
		require.NotNil(t, err)
		assert.Equal(t, InvalidState, err.Kind)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		r := testRoom(2)
		ownPinkGroup(r)
		r.Players[0].Money = 99
		err := r.Build("p1", 11)
		require.NotNil(t, err)
		assert.Equal(t, InsufficientFunds, err.Kind)
		assert.Equal(t, 0, r.prop(11).Houses)
	})
}

func TestDemolish(t *testing.T) {
	t.Run("only at the group maximum", func(t *testing.T) {
		r := testRoom(2)
		ownPinkGroup(r)
		r.prop(11).Houses = 2
		r.prop(13).Houses = 1
		r.prop(14).Houses = 1

		err := r.Demolish("p1", 13)
		require.NotNil(t, err)
		assert.Equal(t, InvalidState, err.Kind)

		require.Nil(t, r.Demolish("p1", 11))
		assert.Equal(t, 1, r.prop(11).Houses)
		assert.Equal(t, StartingMoney+50, r.Players[0].Money)
	})

	t.Run("nothing to demolish", func(t *testing.T) {
		r := testRoom(2)
		ownPinkGroup(r)
		err := r.Demolish("p1", 11)
		require.NotNil(t, err)
		assert.Equal(t, InvalidState, err.Kind)
	})
}

func TestMortgage(t *testing.T) {
	r := testRoom(2)
	r.prop(1).Owner = "p1"

	require.Nil(t, r.Mortgage("p1", 1))
	assert.True(t, r.prop(1).Mortgaged)
	assert.Equal(t, StartingMoney+30, r.Players[0].Money)

	// no rent, no re-mortgage while pledged
	r.payRent(r.Players[1], 1)
	assert.Equal(t, StartingMoney, r.Players[1].Money)
	err := r.Mortgage("p1", 1)
	require.NotNil(t, err)
	assert.Equal(t, InvalidState, err.Kind)

	require.Nil(t, r.Unmortgage("p1", 1))
	assert.False(t, r.prop(1).Mortgaged)
	assert.Equal(t, StartingMoney+30-33, r.Players[0].Money) // round(60 * 0.55)

	// usable again after redemption
	r.payRent(r.Players[1], 1)
	assert.Equal(t, StartingMoney-2, r.Players[1].Money)
}

func TestMortgageValidation(t *testing.T) {
	r := testRoom(2)
	r.prop(11).Owner = "p1"
	r.prop(11).Houses = 1

	err := r.Mortgage("p1", 11)
	require.NotNil(t, err)
	assert.Equal(t, InvalidState, err.Kind)

	err = r.Mortgage("p1", 1) // not owned
	require.NotNil(t, err)
	assert.Equal(t, InvalidState, err.Kind)

	err = r.Unmortgage("p1", 11) // not mortgaged
	require.NotNil(t, err)
	assert.Equal(t, InvalidState, err.Kind)
}

func TestUnmortgageNeedsFunds(t *testing.T) {
	r := testRoom(2)
	r.prop(39).Owner = "p1"
	r.prop(39).Mortgaged = true
	r.Players[0].Money = 219 // redemption costs 220

	err := r.Unmortgage("p1", 39)
	require.NotNil(t, err)
	assert.Equal(t, InsufficientFunds, err.Kind)
	assert.True(t, r.prop(39).Mortgaged)
}

func TestBankruptcyReleasesEverything(t *testing.T) {
	r := testRoom(2)
	r.prop(1).Owner = "p2"
	r.prop(1).Houses = 3
	r.prop(3).Owner = "p2"
	r.prop(3).Mortgaged = true
	r.Board[5].(models.Ownable).SetOwner("p2")
	r.Players[1].Money = -10

	r.settle()

	p2 := r.Players[1]
	assert.True(t, p2.Bankrupt)
	assert.Equal(t, "", r.prop(1).Owner)
	assert.Equal(t, 0, r.prop(1).Houses)
	assert.Equal(t, "", r.prop(3).Owner)
	assert.False(t, r.prop(3).Mortgaged)

	assert.True(t, r.Finished)
	assert.Equal(t, "p1", r.Winner)

	// finished rooms are read-only
	err := r.Roll("p1")
	require.NotNil(t, err)
	assert.Equal(t, InvalidState, err.Kind)
}

func TestRentDrivenBankruptcy(t *testing.T) {
	r := testRoom(2)
	r.prop(39).Owner = "p1" // Boardwalk, base rent 50
	p2 := r.Players[1]
	p2.Pos = 36
	p2.Money = 20
	r.Turn = 1
	r.dice = script([2]int{1, 2})

	require.Nil(t, r.Roll("p2"))
	assert.True(t, p2.Bankrupt)
	assert.Equal(t, -30, p2.Money)
	assert.True(t, r.Finished)
	assert.Equal(t, "p1", r.Winner)
}
