package main

import (
	"apartment-booking-server/routes"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeS3()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()
	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}

		return tokenInput.RefreshToken
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		user.Get("/{id}", accessTokenVerifierMiddleware, utils.UserIDMiddleware, routes.GetUser)
		user.Delete("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeleteUser)

		user.Get("/profile", accessTokenVerifierMiddleware, routes.GetUserProfile)
		user.Post("/profile", accessTokenVerifierMiddleware, routes.CreateOrUpdateUserProfile)
		user.Put("/profile", accessTokenVerifierMiddleware, routes.CreateOrUpdateUserProfile)

		user.Post("/verification/email", accessTokenVerifierMiddleware, routes.RequestEmailVerification)
		user.Post("/verification/email/confirm", accessTokenVerifierMiddleware, routes.ConfirmEmailVerification)
		user.Post("/verification/phone", accessTokenVerifierMiddleware, routes.RequestPhoneVerification)
		user.Post("/verification/phone/confirm", accessTokenVerifierMiddleware, routes.ConfirmPhoneVerification)
		user.Post("/verification/socialid", accessTokenVerifierMiddleware, routes.SubmitSocialIDVerification)
	}

	apartment := app.Party("/api/apartment")
	{
		apartment.Get("/", routes.ListApartments)
		apartment.Get("/{id}", routes.GetApartment)
		apartment.Post("/", accessTokenVerifierMiddleware, routes.CreateApartment)
		apartment.Patch("/{id}", accessTokenVerifierMiddleware, routes.UpdateApartment)
		apartment.Delete("/{id}", accessTokenVerifierMiddleware, routes.DeleteApartment)
		apartment.Put("/{id}/amenities", accessTokenVerifierMiddleware, routes.SetApartmentAmenities)
		apartment.Post("/{id}/photos", accessTokenVerifierMiddleware, routes.AddApartmentPhoto)
		apartment.Get("/{id}/photos", routes.ListApartmentPhotos)
		apartment.Get("/{id}/bookings", accessTokenVerifierMiddleware, routes.GetApartmentBookings)
		apartment.Post("/{id}/bookings", accessTokenVerifierMiddleware, routes.CreateBooking)
		apartment.Get("/{id}/reviews", routes.ListApartmentReviews)
		apartment.Post("/{id}/reviews", accessTokenVerifierMiddleware, routes.CreateReview)
	}

	amenity := app.Party("/api/amenity")
	{
		amenity.Get("/", routes.ListAmenities)
		amenity.Post("/", accessTokenVerifierMiddleware, routes.CreateAmenity)
	}

	booking := app.Party("/api/booking")
	{
		booking.Get("/", accessTokenVerifierMiddleware, routes.GetUserBookings)
		booking.Get("/{id}", accessTokenVerifierMiddleware, routes.GetBooking)
		booking.Patch("/{id}/dates", accessTokenVerifierMiddleware, routes.UpdateBookingDates)
		booking.Patch("/{id}/status", accessTokenVerifierMiddleware, routes.UpdateBookingStatus)
		booking.Delete("/{id}", accessTokenVerifierMiddleware, routes.CancelBooking)
		booking.Post("/{id}/payment", accessTokenVerifierMiddleware, routes.CreatePayment)
		booking.Get("/{id}/payment", accessTokenVerifierMiddleware, routes.GetBookingPayment)
	}

	review := app.Party("/api/review")
	{
		review.Delete("/{id}", accessTokenVerifierMiddleware, routes.DeleteReview)
	}

	photo := app.Party("/api/photo")
	{
		photo.Delete("/{id}", accessTokenVerifierMiddleware, routes.DeletePhoto)
	}

	wishlist := app.Party("/api/wishlist")
	{
		wishlist.Post("/", accessTokenVerifierMiddleware, routes.CreateWishList)
		wishlist.Get("/", accessTokenVerifierMiddleware, routes.GetUserWishLists)
		wishlist.Patch("/{id}/apartments", accessTokenVerifierMiddleware, routes.AddApartmentToWishList)
		wishlist.Delete("/{id}/apartments", accessTokenVerifierMiddleware, routes.RemoveApartmentFromWishList)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Fatal(app.Listen(":" + port))
}
