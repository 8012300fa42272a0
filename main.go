package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"

	"github.com/example/landlord-backend/app/controllers"
	"github.com/example/landlord-backend/pkg/routes"
	"github.com/example/landlord-backend/platform/cache"
	"github.com/example/landlord-backend/platform/game"
	"github.com/example/landlord-backend/platform/logging"
	"github.com/example/landlord-backend/platform/sockets"
)

func main() {
	logging.Init()

	store := game.NewStore()
	pool := cache.CreateRedisPool()
	defer pool.Close()

	app := fiber.New()

	app.Use(cors.New())
	routes.AuthRoutes(app)
	routes.GameRoutes(app, &controllers.GameController{Store: store, Pool: pool})

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte("secret"),
	}))

	app.Get("/user/cur", controllers.Cur)
	go sockets.CreateSocketIOServer(store, pool)
	app.Listen(":4101")
}
