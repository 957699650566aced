package main

import (
	"log"
	"net/http"

	"github.com/mighty-stack/swiftship/internal/api"
	"github.com/mighty-stack/swiftship/internal/config"
	"github.com/mighty-stack/swiftship/internal/controllers"
	"github.com/mighty-stack/swiftship/internal/credential"
	"github.com/mighty-stack/swiftship/internal/logger"
	"github.com/mighty-stack/swiftship/internal/middleware"
	"github.com/mighty-stack/swiftship/internal/routes"
	"github.com/mighty-stack/swiftship/internal/store"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Credential store holds the persisted bearer token between runs
	creds, err := credential.Open(cfg.CredentialDB)
	if err != nil {
		log.Fatalf("failed to open credential store: %v", err)
	}

	client := api.New(cfg.APIBaseURL, creds, cfg.HTTPTimeout)

	sessions := store.NewSessionStore(client, creds)
	jobs := store.NewJobStore(client)
	shipments := store.NewShipmentStore(client)
	earnings := store.NewEarningStore(client)
	users := store.NewUserStore(client)
	drivers := store.NewDriverStore(client)
	payments := store.NewPaymentStore(client)

	r := routes.SetupRouter(routes.Controllers{
		Sessions: sessions,
		Auth:     &controllers.AuthController{Sessions: sessions},
		Customer: &controllers.CustomerController{Sessions: sessions, Shipments: shipments, Payments: payments},
		Driver: &controllers.DriverController{
			Sessions: sessions,
			Jobs:     jobs,
			Earnings: earnings,
			Drivers:  drivers,
		},
		Admin: &controllers.AdminController{Sessions: sessions, Shipments: shipments, Users: users},
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 SwiftShip dashboard running at %s (backend %s)", cfg.ListenAddr, cfg.APIBaseURL)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
