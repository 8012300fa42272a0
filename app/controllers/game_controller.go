package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gomodule/redigo/redis"
	"github.com/sirupsen/logrus"

	"github.com/example/landlord-backend/app/models"
	"github.com/example/landlord-backend/pkg"
	"github.com/example/landlord-backend/platform/cache"
	"github.com/example/landlord-backend/platform/database"
	"github.com/example/landlord-backend/platform/game"
)

const OpenGamesKey = "games.open"

// GameController owns the room store; rooms live in memory, the Postgres
// row and the Redis directory entry are only for discovery.
type GameController struct {
	Store *game.Store
	Pool  *redis.Pool
}

func (g *GameController) CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if gameCreateDto.Name == "" {
		gameCreateDto.Name = "game-" + pkg.RandString(8)
	}

	room := g.Store.Create(gameCreateDto.Seed)
	record := &models.Game{
		Id:     room.Id,
		Name:   gameCreateDto.Name,
		Status: "open",
	}
	if _, err := db.Model(record).Insert(); err != nil {
		g.Store.Remove(room.Id)
		logrus.WithError(err).Error("failed creating game record")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	conn := g.Pool.Get()
	defer conn.Close()
	cache.SADD(OpenGamesKey, room.Id, &conn)
	cache.HSET("game."+room.Id, "name", gameCreateDto.Name, &conn)
	cache.HSET("game."+room.Id, "status", "open", &conn)

	return c.JSON(fiber.Map{"id": room.Id})
}

func (g *GameController) GetAllAvailGames(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var games []models.Game
	if err := db.Model(&games).Where("status = ?", "open").Select(); err != nil {
		logrus.WithError(err).Error("failed listing games")
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

func (g *GameController) VerifyGame(c *fiber.Ctx) error {
	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	_, err := g.Store.Get(verifyGameDto.Code)
	return c.JSON(fiber.Map{"status": err == nil})
}

// FindAvailGame picks a random joinable room from the Redis directory.
func (g *GameController) FindAvailGame(c *fiber.Ctx) error {
	conn := g.Pool.Get()
	defer conn.Close()

	id, err := cache.SRANDMEMBER(OpenGamesKey, &conn)
	if err != nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(fiber.Map{"id": id})
}
