package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"
	"encoding/json"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type CreateOrUpdateProfileInput struct {
	PhoneNumber        string   `json:"phoneNumber" validate:"required,max=20"`
	SocialIDCardNumber string   `json:"socialIDCardNumber" validate:"max=20"`
	Languages          []string `json:"languages"`
}

func GetUserProfile(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var profile models.UserProfile
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(profile)
}

// CreateOrUpdateUserProfile upserts the caller's profile. The phone number
// is normalized then validated against the schema rule; a malformed number
// never reaches the store.
func CreateOrUpdateUserProfile(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input CreateOrUpdateProfileInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	phoneNumber := utils.FormatPhoneNumber(input.PhoneNumber)
	if !utils.ValidatePhoneNumber(phoneNumber) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error",
			"Invalid phone number: expected an optional +, an optional 1, then 9 to 15 digits.", ctx)
		return
	}

	languagesJSON, _ := json.Marshal(input.Languages)

	var profile models.UserProfile
	err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error

	if err != nil {
		profile = models.UserProfile{
			UserID:             claims.ID,
			PhoneNumber:        phoneNumber,
			SocialIDCardNumber: input.SocialIDCardNumber,
			Languages:          languagesJSON,
		}
		if err := storage.DB.Create(&profile).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	} else {
		profile.PhoneNumber = phoneNumber
		profile.SocialIDCardNumber = input.SocialIDCardNumber
		profile.Languages = languagesJSON
		if err := storage.DB.Save(&profile).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	}

	ctx.JSON(profile)
}
