package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/landlord-backend/app/controllers"
)

func GameRoutes(a *fiber.App, g *controllers.GameController) {
	route := a.Group("/game")
	route.Post("/create", g.CreateGame)
	route.Get("/verify", g.VerifyGame)
	route.Get("/all", g.GetAllAvailGames)
	route.Get("/find", g.FindAvailGame)
}
