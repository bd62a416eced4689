package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"             // Loads .env files into the process environment
	"github.com/labstack/echo/v4"          // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Echo's built-in middleware

	"github.com/hotelbook/booking-web/internal/api"
	"github.com/hotelbook/booking-web/internal/config"
	"github.com/hotelbook/booking-web/internal/handler"
	"github.com/hotelbook/booking-web/internal/middleware"
	"github.com/hotelbook/booking-web/internal/router"
	"github.com/hotelbook/booking-web/internal/session"
	"github.com/hotelbook/booking-web/internal/view"
)

func main() {
	_ = godotenv.Load() // .env is optional; real environments set vars directly
	cfg := config.Load()

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}

	// Sessions live in Redis so restarts keep users logged in; with no
	// Redis the process falls back to an in-memory store.
	rdb := config.NewRedisClient()
	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb)
	} else {
		log.Println("redis unavailable, using in-memory session store")
		store = session.NewMemoryStore()
	}

	client := api.New(cfg.BackendBaseURL)
	base := handler.NewBase(cfg, client, store)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = handler.NewFormValidator()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.LoadSession(store))

	router.Register(e, router.Handlers{
		Auth:     handler.NewAuthHandler(base),
		Register: handler.NewRegisterHandler(base),
		Home:     handler.NewHomeHandler(base),
		Rooms:    handler.NewRoomHandler(base),
		Booking:  handler.NewBookingHandler(base),
		Account:  handler.NewAccountHandler(base),
	}, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
