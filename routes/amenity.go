package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateAmenityInput struct {
	Name string `json:"name" validate:"required,max=100"`
	Icon string `json:"icon"` // base64 payload, optional
}

func CreateAmenity(ctx iris.Context) {
	var input CreateAmenityInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	amenity := models.Amenity{Name: input.Name}

	if input.Icon != "" {
		key, uploadErr := storage.UploadBase64Object(storage.AmenityIconsPrefix, input.Icon, "image/png")
		if uploadErr != nil {
			utils.CreateError(iris.StatusBadRequest, "Upload Error", "Could not store the image.", ctx)
			return
		}
		amenity.Icon = key
	}

	if err := storage.DB.Create(&amenity).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(amenity)
}

func ListAmenities(ctx iris.Context) {
	var amenities []models.Amenity
	if err := storage.DB.Order("name").Find(&amenities).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(amenities)
}
