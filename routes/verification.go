package routes

import (
	"apartment-booking-server/models"
	"apartment-booking-server/services"
	"apartment-booking-server/storage"
	"apartment-booking-server/utils"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

type ConfirmCodeInput struct {
	Code string `json:"code" validate:"required,len=6"`
}

type SubmitSocialIDInput struct {
	Document string `json:"document" validate:"required"` // base64 payload
}

// RequestEmailVerification issues a fresh code for the caller's email and
// mails it. Re-requesting replaces the previous code on the same row.
func RequestEmailVerification(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var user models.User
	if err := storage.DB.First(&user, claims.ID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	code := utils.GenerateVerificationCode(6)

	var verification models.EmailVerification
	err := storage.DB.Where("user_id = ?", user.ID).First(&verification).Error
	if err != nil {
		verification = models.EmailVerification{UserID: user.ID, Code: code}
		if err := storage.DB.Create(&verification).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	} else {
		verification.Code = code
		verification.Verified = false
		if err := storage.DB.Save(&verification).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	}

	if err := services.SendEmailVerificationCode(user.Email, code); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"sent": true})
}

// ConfirmEmailVerification checks the echoed code and, on a match, marks
// both the verification row and the profile flag.
func ConfirmEmailVerification(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input ConfirmCodeInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var verification models.EmailVerification
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&verification).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if verification.Code != input.Code {
		utils.CreateError(iris.StatusBadRequest, "Verification Error", "Incorrect verification code.", ctx)
		return
	}

	verification.Verified = true
	if err := storage.DB.Save(&verification).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	var profile models.UserProfile
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error; err == nil {
		profile.IsEmailVerified = true
		if err := storage.DB.Save(&profile).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	}

	ctx.JSON(iris.Map{"verified": true})
}

func RequestPhoneVerification(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var profile models.UserProfile
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Create a profile with a phone number first.", ctx)
		return
	}

	code := utils.GenerateVerificationCode(6)

	var verification models.PhoneVerification
	err := storage.DB.Where("user_id = ?", claims.ID).First(&verification).Error
	if err != nil {
		verification = models.PhoneVerification{UserID: claims.ID, Code: code}
		if err := storage.DB.Create(&verification).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	} else {
		verification.Code = code
		verification.Verified = false
		if err := storage.DB.Save(&verification).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	}

	if err := services.SendPhoneVerificationCode(profile.PhoneNumber, code); err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"sent": true})
}

func ConfirmPhoneVerification(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input ConfirmCodeInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var verification models.PhoneVerification
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&verification).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	if verification.Code != input.Code {
		utils.CreateError(iris.StatusBadRequest, "Verification Error", "Incorrect verification code.", ctx)
		return
	}

	verification.Verified = true
	if err := storage.DB.Save(&verification).Error; err != nil {
		utils.HandleSaveError(err, ctx)
		return
	}

	var profile models.UserProfile
	if err := storage.DB.Where("user_id = ?", claims.ID).First(&profile).Error; err == nil {
		profile.IsPhoneVerified = true
		if err := storage.DB.Save(&profile).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	}

	ctx.JSON(iris.Map{"verified": true})
}

// SubmitSocialIDVerification stores the uploaded identity document under
// social_id_documents/ and parks the row for review. Only the object key is
// persisted.
func SubmitSocialIDVerification(ctx iris.Context) {
	claims := jwt.Get(ctx).(*utils.AccessToken)

	var input SubmitSocialIDInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	key, uploadErr := storage.UploadBase64Object(storage.SocialIDDocumentsPrefix, input.Document, "application/octet-stream")
	if uploadErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Upload Error", "Could not store the document.", ctx)
		return
	}

	var verification models.SocialIDVerification
	err := storage.DB.Where("user_id = ?", claims.ID).First(&verification).Error
	if err != nil {
		verification = models.SocialIDVerification{UserID: claims.ID, Document: key}
		if err := storage.DB.Create(&verification).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	} else {
		if verification.Document != "" {
			storage.DeleteObject(verification.Document)
		}
		verification.Document = key
		verification.Verified = false
		if err := storage.DB.Save(&verification).Error; err != nil {
			utils.HandleSaveError(err, ctx)
			return
		}
	}

	ctx.JSON(verification)
}
