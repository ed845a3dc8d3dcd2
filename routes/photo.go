package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type AddPhotoInput struct {
	Image string `json:"image" validate:"required"` // base64 payload
}

// AddApartmentPhoto stores a gallery image under apartment_photos/ and
// attaches the key to the listing.
func AddApartmentPhoto(ctx iris.Context) {
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

	var input AddPhotoInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	key, uploadErr := storage.UploadBase64Object(storage.ApartmentPhotosPrefix, input.Image, "image/jpeg")
	if uploadErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Upload Error", "Could not store the image.", ctx)
		return
	}

	photo := models.Photo{ApartmentID: apartment.ID, Image: key}
	if err := storage.DB.Create(&photo).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(photo)
}

func ListApartmentPhotos(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	var photos []models.Photo
	if err := storage.DB.Where("apartment_id = ?", id).Find(&photos).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(photos)
}

func DeletePhoto(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var photo models.Photo
	if err := storage.DB.First(&photo, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, photo.ApartmentID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if apartment.OwnerID != claims.ID {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	storage.DeleteObject(photo.Image)

	if err := storage.DB.Unscoped().Delete(&photo).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}
