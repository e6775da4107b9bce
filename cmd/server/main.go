package main

import (
	"log"

	"bj-oracle/internal/app"
	"bj-oracle/internal/logger"
)

func main() {
	logger.Init()
	server := app.NewServer()
	log.Fatal(server.Start())
}
