package sockets

import (
	"encoding/json"
	"net/http"
	"strconv"

	socketio "github.com/googollee/go-socket.io"
	"github.com/gomodule/redigo/redis"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/example/landlord-backend/app/models"
	"github.com/example/landlord-backend/platform/cache"
	"github.com/example/landlord-backend/platform/database"
	"github.com/example/landlord-backend/platform/game"
)

// CreateSocketIOServer runs the realtime side: every event resolves a room,
// applies one engine call and relays the fresh snapshot to the whole room.
// The engine never touches the network.
func CreateSocketIOServer(store *game.Store, pool *redis.Pool) {
	server, err := socketio.NewServer(nil)
	if err != nil {
		panic(err)
	}

	// broadcast the post-mutation snapshot, plus game-over bookkeeping
	relay := func(room *game.Room) {
		snap := room.Snapshot()
		payload, err := json.Marshal(snap)
		if err != nil {
			panic(err)
		}
		server.BroadcastToRoom("/", room.Id, "game-state", string(payload))
		if snap.Finished {
			server.BroadcastToRoom("/", room.Id, "game-over", snap.Winner)
			conn := pool.Get()
			defer conn.Close()
			cache.SREM("games.open", room.Id, &conn)
			cache.Del("game."+room.Id, &conn)
			db := database.PostgreSQLConnection()
			defer db.Close()
			record := &models.Game{Id: room.Id}
			if _, err := db.Model(record).WherePK().Set("status = ?", "finished").Update(); err != nil {
				logrus.WithError(err).Error("failed closing game record")
			}
		}
	}

	// run one engine call for the event payload's room
	handle := func(s socketio.Conn, jsonStr string, op func(room *game.Room, args map[string]string) *game.Error) {
		var args map[string]string
		if err := json.Unmarshal([]byte(jsonStr), &args); err != nil {
			s.Emit("error-message", "malformed payload")
			return
		}
		room, gerr := store.Get(args["game_id"])
		if gerr != nil {
			s.Emit("error-message", gerr.Reason)
			return
		}
		if gerr := op(room, args); gerr != nil {
			s.Emit("error-message", gerr.Reason)
			return
		}
		relay(room)
	}

	atoi := func(args map[string]string, key string) (int, *game.Error) {
		n, err := strconv.Atoi(args[key])
		if err != nil {
			return 0, &game.Error{Kind: game.InvalidArgument, Reason: "bad " + key}
		}
		return n, nil
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		s.SetContext("")
		return nil
	})

	server.OnEvent("/", "join-game", func(s socketio.Conn, jsonStr string) {
		var args map[string]string
		if err := json.Unmarshal([]byte(jsonStr), &args); err != nil {
			s.Emit("error-message", "malformed payload")
			return
		}
		room, gerr := store.Get(args["game_id"])
		if gerr != nil {
			s.Emit("error-message", gerr.Reason)
			return
		}
		db := database.PostgreSQLConnection()
		defer db.Close()
		user := &models.User{Id: args["user_id"]}
		if err := db.Model(user).WherePK().Select(); err != nil {
			s.Emit("error-message", "user retrieval failed")
			return
		}
		if gerr := room.AddPlayer(user.Id, user.Email, args["color"]); gerr != nil {
			s.Emit("error-message", gerr.Reason)
			return
		}
		s.Join(room.Id)
		server.BroadcastToRoom("/", room.Id, "player-join", user.Email)
		relay(room)
		logrus.WithField("room", room.Id).Infof("%s joined", user.Email)
	})

	server.OnEvent("/", "leave-game", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			if gerr := room.RemovePlayer(args["user_id"]); gerr != nil {
				return gerr
			}
			s.Leave(room.Id)
			server.BroadcastToRoom("/", room.Id, "player-left", args["user_id"])
			return nil
		})
	})

	server.OnEvent("/", "start-game", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			if gerr := room.Start(); gerr != nil {
				return gerr
			}
			conn := pool.Get()
			defer conn.Close()
			cache.SREM("games.open", room.Id, &conn)
			cache.HSET("game."+room.Id, "status", "in progress", &conn)
			db := database.PostgreSQLConnection()
			defer db.Close()
			record := &models.Game{Id: room.Id}
			if _, err := db.Model(record).WherePK().Set("status = ?", "in progress").Update(); err != nil {
				logrus.WithError(err).Error("failed updating game record")
			}
			server.BroadcastToRoom("/", room.Id, "game-start")
			return nil
		})
	})

	server.OnEvent("/", "roll-dice", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			return room.Roll(args["user_id"])
		})
	})

	server.OnEvent("/", "end-turn", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			return room.EndTurn(args["user_id"])
		})
	})

	server.OnEvent("/", "request-buy", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			return room.Buy(args["user_id"])
		})
	})

	server.OnEvent("/", "decline-buy", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			return room.DeclineBuy(args["user_id"])
		})
	})

	server.OnEvent("/", "buy-house", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			pos, gerr := atoi(args, "card_pos")
			if gerr != nil {
				return gerr
			}
			return room.Build(args["user_id"], pos)
		})
	})

	server.OnEvent("/", "sell-house", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			pos, gerr := atoi(args, "card_pos")
			if gerr != nil {
				return gerr
			}
			return room.Demolish(args["user_id"], pos)
		})
	})

	server.OnEvent("/", "mortgage", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			pos, gerr := atoi(args, "card_pos")
			if gerr != nil {
				return gerr
			}
			return room.Mortgage(args["user_id"], pos)
		})
	})

	server.OnEvent("/", "unmortgage", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			pos, gerr := atoi(args, "card_pos")
			if gerr != nil {
				return gerr
			}
			return room.Unmortgage(args["user_id"], pos)
		})
	})

	server.OnEvent("/", "auction-bid", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			amount, gerr := atoi(args, "amount")
			if gerr != nil {
				return gerr
			}
			return room.Bid(args["user_id"], amount)
		})
	})

	server.OnEvent("/", "auction-pass", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			return room.Pass(args["user_id"])
		})
	})

	server.OnEvent("/", "propose-trade", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			pos, gerr := atoi(args, "card_pos")
			if gerr != nil {
				return gerr
			}
			money, gerr := atoi(args, "money")
			if gerr != nil {
				return gerr
			}
			return room.ProposeTrade(args["user_id"], args["target"], pos, money, args["note"])
		})
	})

	server.OnEvent("/", "accept-trade", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			return room.AcceptTrade(args["user_id"])
		})
	})

	server.OnEvent("/", "reject-trade", func(s socketio.Conn, jsonStr string) {
		handle(s, jsonStr, func(room *game.Room, args map[string]string) *game.Error {
			return room.RejectTrade(args["user_id"])
		})
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		logrus.WithError(e).Error("socket error")
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		for _, room := range s.Rooms() {
			server.BroadcastToRoom("/", room, "player-left")
		}
		s.LeaveAll()
	})

	go server.Serve()
	defer server.Close()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
	})

	mux := http.NewServeMux()
	mux.Handle("/socket.io/", server)
	http.ListenAndServe(":8000", c.Handler(mux))
}
