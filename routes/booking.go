package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"
	"time"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/exp/slices"
)

var bookingStatuses = []string{
	models.BookingStatusPending,
	models.BookingStatusConfirmed,
	models.BookingStatusCancelled,
}

type CreateBookingInput struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

type UpdateBookingDatesInput struct {
	StartDate time.Time `json:"startDate" validate:"required"`
	EndDate   time.Time `json:"endDate" validate:"required"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// CreateBooking books the apartment for the caller. The total is derived
// server-side in the save hook; whatever the client sends is ignored.
// Overlapping date ranges for the same apartment are accepted.
func CreateBooking(ctx iris.Context) {
	params := ctx.Params()
	apartmentID := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, apartmentID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Apartment not found.", ctx)
		return
	}

	booking := models.Booking{
		UserID:      claims.ID,
		ApartmentID: apartment.ID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      models.BookingStatusPending,
	}

	if err := storage.DB.Create(&booking).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(booking)
}

func GetBooking(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	var booking models.Booking
	if err := storage.DB.Preload("Apartment").Preload("Payment").First(&booking, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(booking)
}

func GetUserBookings(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var bookings []models.Booking
	res := storage.DB.Preload("Apartment").Where("user_id = ?", claims.ID).Order("created_at DESC").Find(&bookings)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}

// GetApartmentBookings returns the bookings on a listing to its owner.
func GetApartmentBookings(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if apartment.OwnerID != claims.ID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	var bookings []models.Booking
	res := storage.DB.Preload("User").Where("apartment_id = ?", id).Order("created_at DESC").Find(&bookings)
	if res.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(bookings)
}

// UpdateBookingDates changes the stay and re-saves; the hook recomputes the
// total from the new range.
func UpdateBookingDates(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var booking models.Booking
	if err := storage.DB.First(&booking, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if booking.UserID != claims.ID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	var input UpdateBookingDatesInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	booking.StartDate = input.StartDate
	booking.EndDate = input.EndDate

	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.JSON(booking)
}

// UpdateBookingStatus sets the flat status value. Membership in the enum is
// the only rule; any status may replace any other.
func UpdateBookingStatus(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input UpdateBookingStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if !slices.Contains(bookingStatuses, input.Status) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"Status must be one of pending, confirmed, cancelled.", ctx)
		return
	}

	var booking models.Booking
	if err := storage.DB.Preload("Apartment").First(&booking, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if booking.UserID != claims.ID && booking.Apartment.OwnerID != claims.ID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	booking.Status = input.Status
	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.JSON(booking)
}

func CancelBooking(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var booking models.Booking
	if err := storage.DB.First(&booking, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if booking.UserID != claims.ID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	booking.Status = models.BookingStatusCancelled
	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.JSON(booking)
}
