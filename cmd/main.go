package main

import (
	"os"

	"github.com/jerekarp/hyte-backend/config"
	"github.com/jerekarp/hyte-backend/routes"
	"github.com/jerekarp/hyte-backend/services"
)

func main() {
	config.InitDB()
	services.SeedDemoUsers()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	r.Run(":" + port)
}
