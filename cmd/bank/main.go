package main

import (
	"log"

	"github.com/securebank/bankd/internal/bank/app"
)

//	@title			SecureBank API
//	@version		1.0
//	@description	Session, account, transfer and user directory API for the SecureBank demo bank.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialise application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
