package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type CreatePaymentInput struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" validate:"required,max=100"`
}

// CreatePayment records the captured payment for a booking. The unique
// index on booking_id turns a second attempt into a 409; the first payment
// is untouched. The amount is taken as given, no cross-check against the
// booking total.
func CreatePayment(ctx iris.Context) {
	params := ctx.Params()
	bookingID := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreatePaymentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, bookingID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Booking not found.", ctx)
		return
	}

	if booking.UserID != claims.ID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	payment := models.Payment{
		UserID:        claims.ID,
		BookingID:     booking.ID,
		Amount:        input.Amount,
		PaymentMethod: input.PaymentMethod,
	}

	if err := storage.DB.Create(&payment).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(payment)
}

func GetBookingPayment(ctx iris.Context) {
	params := ctx.Params()
	bookingID := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var booking models.Booking
	if err := storage.DB.First(&booking, bookingID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if booking.UserID != claims.ID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	var payment models.Payment
	if err := storage.DB.Where("booking_id = ?", booking.ID).First(&payment).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(payment)
}
