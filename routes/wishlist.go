package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
	"golang.org/x/exp/slices"
)

// CreateWishList opens a saved-listings collection for the caller. The
// schema does not stop a user from having more than one.
func CreateWishList(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	wishList := models.WishList{UserID: claims.ID}
	if err := storage.DB.Create(&wishList).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(wishList)
}

func GetUserWishLists(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var wishLists []models.WishList
	if err := storage.DB.Preload("Apartments").Where("user_id = ?", claims.ID).Find(&wishLists).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(wishLists)
}

type AlterWishListInput struct {
	ApartmentID uint `json:"apartmentID" validate:"required"`
}

func AddApartmentToWishList(ctx iris.Context) {
	wishList, apartment, ok := loadWishListAndApartment(ctx)
	if !ok {
		return
	}

	var savedIDs []uint
	for _, saved := range wishList.Apartments {
		savedIDs = append(savedIDs, saved.ID)
	}
	if slices.Contains(savedIDs, apartment.ID) {
		ctx.JSON(wishList)
		return
	}

	if err := storage.DB.Model(wishList).Association("Apartments").Append(apartment); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(wishList)
}

func RemoveApartmentFromWishList(ctx iris.Context) {
	wishList, apartment, ok := loadWishListAndApartment(ctx)
	if !ok {
		return
	}

	if err := storage.DB.Model(wishList).Association("Apartments").Delete(apartment); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(wishList)
}

func loadWishListAndApartment(ctx iris.Context) (*models.WishList, *models.Apartment, bool) {
	params := ctx.Params()
	id := params.Get("id")
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var wishList models.WishList
	if err := storage.DB.Preload("Apartments").First(&wishList, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return nil, nil, false
	}

	if wishList.UserID != claims.ID {
		ctx.StatusCode(iris.StatusForbidden)
		return nil, nil, false
	}

	var input AlterWishListInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return nil, nil, false
	}

	var apartment models.Apartment
	if err := storage.DB.First(&apartment, input.ApartmentID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Apartment not found.", ctx)
		return nil, nil, false
	}

	return &wishList, &apartment, true
}
