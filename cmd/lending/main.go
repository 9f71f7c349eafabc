package main

import (
	stdLog "log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Astemirdum/book-network/lending/app"
	"github.com/Astemirdum/book-network/lending/config"
)

//	@title						Book Network Lending API
//	@version					1.0
//	@description				Borrow, return and review books shared by other users.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	if err := godotenv.Load(); err != nil {
		stdLog.Println("no .env file, using environment:", err)
	}
	cfg := config.NewConfig(
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
