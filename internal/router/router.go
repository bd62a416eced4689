// Package router maps URLs to handlers. Pages that render or mutate
// account-bound state sit behind the auth gate; credential-bearing
// form posts are additionally throttled.
package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/hotelbook/booking-web/internal/handler"
	"github.com/hotelbook/booking-web/internal/middleware"
)

// Handlers groups everything the route table needs.
type Handlers struct {
	Auth     *handler.AuthHandler
	Register *handler.RegisterHandler
	Home     *handler.HomeHandler
	Rooms    *handler.RoomHandler
	Booking  *handler.BookingHandler
	Account  *handler.AccountHandler
}

// Register wires every route of the application onto the Echo
// instance. rdb may be nil, in which case credential throttling is
// disabled.
func Register(e *echo.Echo, h Handlers, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	// Public pages.
	e.GET("/", h.Home.Home)
	e.GET("/notices/:id", h.Home.Notice)
	e.GET("/rooms", h.Rooms.List)
	e.GET("/rooms/:id", h.Rooms.Detail)

	// Credential posts get a tight per-IP budget; page loads do not.
	throttle := middleware.RateLimit(rdb, 10, time.Minute)

	e.GET("/login", h.Auth.ShowLogin)
	e.POST("/login", h.Auth.Login, throttle)
	e.POST("/logout", h.Auth.Logout)
	e.GET("/forgot", h.Auth.ShowForgot)
	e.POST("/forgot/id", h.Auth.ForgotID, throttle)
	e.POST("/forgot/password", h.Auth.ForgotPassword, throttle)

	e.GET("/register", h.Register.ShowRegister)
	e.POST("/register/send-code", h.Register.SendCode, throttle)
	e.POST("/register/verify", h.Register.VerifyCode, throttle)
	e.POST("/register", h.Register.Submit, throttle)

	// Everything below requires a logged-in session.
	auth := e.Group("", middleware.RequireAuth)
	auth.GET("/rooms/:id/book", h.Booking.ShowInfo)
	auth.POST("/rooms/:id/book", h.Booking.SubmitInfo)
	auth.GET("/bookings/:id/pay", h.Booking.ShowPayment)
	auth.POST("/bookings/:id/pay", h.Booking.SubmitPayment)
	auth.POST("/bookings/:id/cancel", h.Account.CancelBooking)
	auth.GET("/mypage", h.Account.MyPage)
	auth.POST("/mypage/profile", h.Account.UpdateProfile)
	auth.POST("/mypage/delete", h.Account.DeleteAccount)
	auth.POST("/reviews", h.Account.CreateReview)
}
