package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// buildTestApp wires the routes under test against an in-memory database,
// with a JWT verifier using a test secret.
func buildTestApp(t *testing.T) *iris.Application {
	t.Helper()
	os.Setenv("ACCESS_TOKEN_SECRET", "testsecret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.EmailVerification{},
		&models.PhoneVerification{},
		&models.SocialIDVerification{},
		&models.Amenity{},
		&models.Apartment{},
		&models.Photo{},
		&models.Booking{},
		&models.Review{},
		&models.Payment{},
		&models.WishList{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	storage.DB = db

	app := iris.New()
	app.Validator = validator.New()

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} { return new(utils.AccessToken) })

	user := app.Party("/api/user")
	{
		user.Get("/{id}", accessTokenVerifierMiddleware, utils.UserIDMiddleware, GetUser)
		user.Delete("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, DeleteUser)
		user.Post("/verification/email/confirm", accessTokenVerifierMiddleware, ConfirmEmailVerification)
		user.Post("/verification/phone/confirm", accessTokenVerifierMiddleware, ConfirmPhoneVerification)
	}
	apartment := app.Party("/api/apartment")
	{
		apartment.Post("/", accessTokenVerifierMiddleware, CreateApartment)
		apartment.Post("/{id}/bookings", accessTokenVerifierMiddleware, CreateBooking)
		apartment.Post("/{id}/reviews", accessTokenVerifierMiddleware, CreateReview)
	}
	amenity := app.Party("/api/amenity")
	{
		amenity.Post("/", accessTokenVerifierMiddleware, CreateAmenity)
	}
	booking := app.Party("/api/booking")
	{
		booking.Post("/{id}/payment", accessTokenVerifierMiddleware, CreatePayment)
	}

	if err := app.Build(); err != nil {
		t.Fatalf("build app: %v", err)
	}
	return app
}

func signTestToken(t *testing.T, id uint) string {
	t.Helper()
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 0)
	token, err := signer.Sign(utils.AccessToken{ID: id, Username: "test"})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return string(token)
}

func seedUserAndApartment(t *testing.T, pricePerNight float64) (models.User, models.Apartment) {
	t.Helper()
	user := models.User{Username: "guest", Email: "guest@example.com", Password: "x"}
	if err := storage.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	apartment := models.Apartment{
		Name:          "Harbor Flat",
		Address:       "3 Pier Rd",
		City:          "Porto",
		Country:       "Portugal",
		PricePerNight: pricePerNight,
		NumBedrooms:   1,
		NumBathrooms:  1,
		MaxGuests:     2,
		SizeSqMeters:  40,
		OwnerID:       user.ID,
	}
	if err := storage.DB.Create(&apartment).Error; err != nil {
		t.Fatalf("seed apartment: %v", err)
	}
	return user, apartment
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse time %q: %v", value, err)
	}
	return parsed
}

func doJSON(app *iris.Application, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)
	return resp
}

func TestCreateBookingComputesTotalServerSide(t *testing.T) {
	app := buildTestApp(t)
	user, apartment := seedUserAndApartment(t, 100.00)
	token := signTestToken(t, user.ID)

	body := `{"startDate":"2024-01-01T00:00:00Z","endDate":"2024-01-04T00:00:00Z"}`
	resp := doJSON(app, http.MethodPost, fmt.Sprintf("/api/apartment/%d/bookings", apartment.ID), token, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var booking models.Booking
	if err := json.Unmarshal(resp.Body.Bytes(), &booking); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if booking.TotalPrice != 300.00 {
		t.Fatalf("totalPrice = %v, want 300.00", booking.TotalPrice)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("status = %q, want pending", booking.Status)
	}
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	app := buildTestApp(t)
	user, apartment := seedUserAndApartment(t, 80.00)
	token := signTestToken(t, user.ID)

	resp := doJSON(app, http.MethodPost, fmt.Sprintf("/api/apartment/%d/reviews", apartment.ID), token,
		`{"rating":6,"comment":"too good"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("rating 6: expected 400, got %d", resp.Code)
	}

	resp = doJSON(app, http.MethodPost, fmt.Sprintf("/api/apartment/%d/reviews", apartment.ID), token,
		`{"rating":5,"comment":"great"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("rating 5: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestSecondPaymentForBookingConflicts(t *testing.T) {
	app := buildTestApp(t)
	user, apartment := seedUserAndApartment(t, 100.00)
	token := signTestToken(t, user.ID)

	booking := models.Booking{
		UserID:      user.ID,
		ApartmentID: apartment.ID,
		StartDate:   mustParseTime(t, "2024-02-01T00:00:00Z"),
		EndDate:     mustParseTime(t, "2024-02-03T00:00:00Z"),
		Status:      models.BookingStatusConfirmed,
	}
	if err := storage.DB.Create(&booking).Error; err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	path := fmt.Sprintf("/api/booking/%d/payment", booking.ID)
	body := `{"amount":200.00,"paymentMethod":"card"}`

	resp := doJSON(app, http.MethodPost, path, token, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("first payment: expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = doJSON(app, http.MethodPost, path, token, body)
	if resp.Code != http.StatusConflict {
		t.Fatalf("second payment: expected 409, got %d: %s", resp.Code, resp.Body.String())
	}

	var count int64
	storage.DB.Model(&models.Payment{}).Where("booking_id = ?", booking.ID).Count(&count)
	if count != 1 {
		t.Fatalf("payment count = %d, want 1", count)
	}
}
