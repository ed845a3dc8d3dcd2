package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=1000"`
}

// CreateReview attaches feedback to an apartment. Nothing prevents the same
// user from reviewing the same apartment more than once.
func CreateReview(ctx iris.Context) {
	params := ctx.Params()
	apartmentID := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, apartmentID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Apartment not found.", ctx)
		return
	}

	review := models.Review{
		UserID:      claims.ID,
		ApartmentID: apartment.ID,
		Rating:      input.Rating,
		Comment:     input.Comment,
	}

	if err := storage.DB.Create(&review).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(review)
}

func ListApartmentReviews(ctx iris.Context) {
	params := ctx.Params()
	apartmentID := params.Get("id")

	var reviews []models.Review
	if err := storage.DB.Preload("User").
		Where("apartment_id = ?", apartmentID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	var totalRating float64
	for _, review := range reviews {
		totalRating += float64(review.Rating)
	}
	avgRating := 0.0
	if len(reviews) > 0 {
		avgRating = totalRating / float64(len(reviews))
	}

	ctx.JSON(iris.Map{
		"reviews":       reviews,
		"averageRating": avgRating,
		"reviewCount":   len(reviews),
	})
}

func DeleteReview(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var review models.Review
	if err := storage.DB.First(&review, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if review.UserID != claims.ID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	if err := storage.DB.Unscoped().Delete(&review).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}
