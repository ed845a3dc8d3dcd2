package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"gorm.io/gorm"
)

type CreateApartmentInput struct {
	Name          string  `json:"name" validate:"required,max=100"`
	Description   string  `json:"description"`
	Address       string  `json:"address" validate:"required,max=255"`
	City          string  `json:"city" validate:"required,max=100"`
	Country       string  `json:"country" validate:"required,max=100"`
	PricePerNight float64 `json:"pricePerNight" validate:"gte=0"`
	NumBedrooms   *uint   `json:"numBedrooms" validate:"required"`
	NumBathrooms  *uint   `json:"numBathrooms" validate:"required"`
	MaxGuests     *uint   `json:"maxGuests" validate:"required"`
	SizeSqMeters  float64 `json:"sizeSqMeters" validate:"gte=0"`
	MainImage     string  `json:"mainImage"` // base64 payload, optional
	AmenityIDs    []uint  `json:"amenityIDs"`
}

type UpdateApartmentInput struct {
	Name          string  `json:"name" validate:"required,max=100"`
	Description   string  `json:"description"`
	Address       string  `json:"address" validate:"required,max=255"`
	City          string  `json:"city" validate:"required,max=100"`
	Country       string  `json:"country" validate:"required,max=100"`
	PricePerNight float64 `json:"pricePerNight" validate:"gte=0"`
	NumBedrooms   *uint   `json:"numBedrooms" validate:"required"`
	NumBathrooms  *uint   `json:"numBathrooms" validate:"required"`
	MaxGuests     *uint   `json:"maxGuests" validate:"required"`
	SizeSqMeters  float64 `json:"sizeSqMeters" validate:"gte=0"`
}

func CreateApartment(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateApartmentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	apartment := models.Apartment{
		Name:          input.Name,
		Description:   input.Description,
		Address:       input.Address,
		City:          input.City,
		Country:       input.Country,
		PricePerNight: input.PricePerNight,
		NumBedrooms:   *input.NumBedrooms,
		NumBathrooms:  *input.NumBathrooms,
		MaxGuests:     *input.MaxGuests,
		SizeSqMeters:  input.SizeSqMeters,
		OwnerID:       claims.ID,
	}

	if input.MainImage != "" {
		key, uploadErr := storage.UploadBase64Object(storage.ApartmentImagesPrefix, input.MainImage, "image/jpeg")
		if uploadErr != nil {
			utils.CreateError(iris.StatusBadRequest, "Upload Error", "Could not store the image.", ctx)
			return
		}
		apartment.MainImage = key
	}

	if len(input.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := storage.DB.Where("id IN ?", input.AmenityIDs).Find(&amenities).Error; err == nil {
			apartment.Amenities = amenities
		}
	}

	if err := storage.DB.Create(&apartment).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(apartment)
}

func GetApartment(ctx iris.Context) {
	params := ctx.Params()
	id := params.Get("id")

	var apartment models.Apartment
	if err := storage.DB.Preload("Amenities").Preload("Photos").Preload("Reviews").First(&apartment, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(apartment)
}

// ListApartments supports the browse surface: optional city/country/guest
// filters, newest first.
func ListApartments(ctx iris.Context) {
	city := ctx.URLParamDefault("city", "")
	country := ctx.URLParamDefault("country", "")
	guests := ctx.URLParamIntDefault("guests", 0)

	query := storage.DB.Preload("Amenities").Order("created_at DESC")
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if country != "" {
		query = query.Where("country = ?", country)
	}
	if guests > 0 {
		query = query.Where("max_guests >= ?", guests)
	}

	var apartments []models.Apartment
	if err := query.Find(&apartments).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(apartments)
}

func UpdateApartment(ctx iris.Context) {
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

	var input UpdateApartmentInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	apartment.Name = input.Name
	apartment.Description = input.Description
	apartment.Address = input.Address
	apartment.City = input.City
	apartment.Country = input.Country
	apartment.PricePerNight = input.PricePerNight
	apartment.NumBedrooms = *input.NumBedrooms
	apartment.NumBathrooms = *input.NumBathrooms
	apartment.MaxGuests = *input.MaxGuests
	apartment.SizeSqMeters = input.SizeSqMeters

	if err := storage.DB.Save(&apartment).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.JSON(apartment)
}

// DeleteApartment removes the listing and cascades to its bookings,
// reviews, photos and join rows.
func DeleteApartment(ctx iris.Context) {
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

	err := storage.DB.Transaction(func(tx *gorm.DB) error {
		return models.DeleteApartmentsCascade(tx, []uint{apartment.ID})
	})
	if err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusNoContent)
}

type SetAmenitiesInput struct {
	AmenityIDs []uint `json:"amenityIDs" validate:"required"`
}

// SetApartmentAmenities replaces the amenity set of a listing.
func SetApartmentAmenities(ctx iris.Context) {
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

	var input SetAmenitiesInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var amenities []models.Amenity
	if len(input.AmenityIDs) > 0 {
		if err := storage.DB.Where("id IN ?", input.AmenityIDs).Find(&amenities).Error; err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
	}

	if err := storage.DB.Model(&apartment).Association("Amenities").Replace(amenities); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"amenities": amenities})
}
