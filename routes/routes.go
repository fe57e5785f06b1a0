package routes

import (
	"eventcraft/auth"
	"eventcraft/availability"
	"eventcraft/bookings"
	"eventcraft/categories"
	"eventcraft/contact"
	"eventcraft/deals"
	"eventcraft/middleware"
	"eventcraft/pricing"
	"eventcraft/profile"
	"eventcraft/ratelim"
	"eventcraft/services"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/signup", ratelim.RateLimit(auth.Signup))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
}

func AddUserRoutes(router *httprouter.Router) {
	router.GET("/api/user/profile", middleware.Authenticate(profile.GetProfile))
	router.PUT("/api/user/profile", middleware.Authenticate(profile.EditProfile))
	router.DELETE("/api/user/profile", middleware.Authenticate(profile.DeleteProfile))
	router.PUT("/api/user/profile/update-password", middleware.Authenticate(profile.UpdatePassword))
}

func AddServiceRoutes(router *httprouter.Router) {
	router.GET("/api/services", services.GetServices)
	router.POST("/api/services", middleware.Authenticate(middleware.RequireAdmin(services.CreateService)))
	router.PUT("/api/services/:id", middleware.Authenticate(middleware.RequireAdmin(services.EditService)))
	router.DELETE("/api/services/:id", middleware.Authenticate(middleware.RequireAdmin(services.DeleteService)))
}

func AddServiceCategoryRoutes(router *httprouter.Router) {
	router.GET("/api/service-categories", categories.GetCategories)
	router.POST("/api/service-categories", middleware.Authenticate(middleware.RequireAdmin(categories.CreateCategory)))
	router.PUT("/api/service-categories/:categoryId", middleware.Authenticate(middleware.RequireAdmin(categories.EditCategory)))
	router.DELETE("/api/service-categories/:categoryId", middleware.Authenticate(middleware.RequireAdmin(categories.DeleteCategory)))
	router.POST("/api/service-categories/:categoryId/options", middleware.Authenticate(middleware.RequireAdmin(categories.AddOption)))
	router.PUT("/api/service-categories/:categoryId/options/:optionId", middleware.Authenticate(middleware.RequireAdmin(categories.UpdateOption)))
	router.DELETE("/api/service-categories/:categoryId/options/:optionId", middleware.Authenticate(middleware.RequireAdmin(categories.RemoveOption)))
}

func AddDealRoutes(router *httprouter.Router) {
	router.GET("/api/deals", deals.GetDeals)
	router.GET("/api/deals/:id", deals.GetDeal)
	router.POST("/api/deals", middleware.Authenticate(middleware.RequireAdmin(deals.CreateDeal)))
	router.PUT("/api/deals/:id", middleware.Authenticate(middleware.RequireAdmin(deals.EditDeal)))
	router.DELETE("/api/deals/:id", middleware.Authenticate(middleware.RequireAdmin(deals.DeleteDeal)))
	router.PATCH("/api/deals/:id/services", middleware.Authenticate(middleware.RequireAdmin(deals.PatchDealServices)))
}

func AddAvailabilityRoutes(router *httprouter.Router) {
	router.GET("/api/availability", availability.GetAvailability)
	router.POST("/api/availability", middleware.Authenticate(middleware.RequireAdmin(availability.SetAvailability)))
	router.PUT("/api/availability", middleware.Authenticate(middleware.RequireAdmin(availability.UpdateAvailability)))
	router.POST("/api/availability/available", middleware.Authenticate(middleware.RequireAdmin(availability.AddAvailableDate)))
	router.DELETE("/api/availability/available/:date", middleware.Authenticate(middleware.RequireAdmin(availability.RemoveAvailableDate)))
	router.POST("/api/availability/booked", middleware.Authenticate(middleware.RequireAdmin(availability.AddBookedDate)))
	router.DELETE("/api/availability/booked/:date", middleware.Authenticate(middleware.RequireAdmin(availability.RemoveBookedDate)))
	router.GET("/api/availability/check/:date", availability.CheckDateHandler)
}

func AddContactRoutes(router *httprouter.Router) {
	router.POST("/api/contact", ratelim.RateLimit(contact.SubmitContact))
	router.GET("/api/contact", middleware.Authenticate(middleware.RequireAdmin(contact.GetContacts)))
	router.DELETE("/api/contact/:id", middleware.Authenticate(middleware.RequireAdmin(contact.DeleteContact)))
}

func AddBookingRoutes(router *httprouter.Router) {
	router.GET("/api/package-bookings", middleware.Authenticate(middleware.RequireAdmin(bookings.GetPackageBookings)))
	router.GET("/api/package-bookings/user", middleware.Authenticate(bookings.GetMyPackageBookings))
	router.POST("/api/package-bookings", ratelim.RateLimit(middleware.Authenticate(bookings.CreatePackageBooking)))
	router.PUT("/api/package-bookings/:id", middleware.Authenticate(middleware.RequireAdmin(bookings.UpdatePackageBooking)))
	router.DELETE("/api/package-bookings/:id", middleware.Authenticate(middleware.RequireAdmin(bookings.DeletePackageBooking)))
	router.GET("/api/package-bookings/print/:id", middleware.Authenticate(middleware.RequireAdmin(bookings.PrintPackageBooking)))

	router.GET("/api/customized-bookings", middleware.Authenticate(middleware.RequireAdmin(bookings.GetCustomizedBookings)))
	router.GET("/api/customized-bookings/user", middleware.Authenticate(bookings.GetMyCustomizedBookings))
	router.POST("/api/customized-bookings", ratelim.RateLimit(middleware.Authenticate(bookings.CreateCustomizedBooking)))
	router.PUT("/api/customized-bookings/:id", middleware.Authenticate(middleware.RequireAdmin(bookings.UpdateCustomizedBooking)))
	router.DELETE("/api/customized-bookings/:id", middleware.Authenticate(middleware.RequireAdmin(bookings.DeleteCustomizedBooking)))
	router.GET("/api/customized-bookings/print/:id", middleware.Authenticate(middleware.RequireAdmin(bookings.PrintCustomizedBooking)))
}

func AddPricingRoutes(router *httprouter.Router) {
	router.POST("/api/pricing/quote", middleware.OptionalAuth(pricing.QuoteHandler))
}
