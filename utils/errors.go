package utils

import (
	"apartment-booking-server/models"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/kataras/iris/v12"
	"gorm.io/gorm"
)

func CreateError(statusCode int, title string, detail string, ctx iris.Context) {
	ctx.StopWithJSON(statusCode, iris.Map{
		"status": statusCode,
		"title":  title,
		"detail": detail,
	})
}

func CreateInternalServerError(ctx iris.Context) {
	CreateError(
		iris.StatusInternalServerError,
		"Internal Server Error",
		"An unexpected error occurred.", ctx)
}

func CreateNotFound(ctx iris.Context) {
	CreateError(iris.StatusNotFound, "Not Found", "Resource not found.", ctx)
}

// HandleValidationErrors turns validator tag failures from ctx.ReadJSON
// into a 400 with one entry per failed field.
func HandleValidationErrors(err error, ctx iris.Context) {
	if errs, ok := err.(validator.ValidationErrors); ok {
		validationErrors := make([]iris.Map, 0, len(errs))
		for _, validationErr := range errs {
			validationErrors = append(validationErrors, iris.Map{
				"field": validationErr.Field(),
				"tag":   validationErr.Tag(),
				"value": validationErr.Param(),
			})
		}

		ctx.StopWithJSON(iris.StatusBadRequest, iris.Map{
			"status": iris.StatusBadRequest,
			"title":  "Validation Error",
			"errors": validationErrors,
		})
		return
	}

	CreateInternalServerError(ctx)
}

// HandleSaveError maps the error taxonomy of the persistence layer onto
// HTTP statuses: hook validation failures to 400, duplicate keys to 409,
// FK violations to 422, missing rows to 404.
func HandleSaveError(err error, ctx iris.Context) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		CreateError(iris.StatusBadRequest, "Validation Error", validationErr.Error(), ctx)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		CreateError(iris.StatusConflict, "Conflict", "A record with this reference already exists.", ctx)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		CreateError(iris.StatusUnprocessableEntity, "Integrity Error", "Referenced record does not exist.", ctx)
	case errors.Is(err, gorm.ErrRecordNotFound):
		CreateNotFound(ctx)
	default:
		CreateInternalServerError(ctx)
	}
}
