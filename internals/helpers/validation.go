package helper

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Pesan error merujuk nama field JSON, bukan nama struct Go.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct menjalankan tag validasi DTO dan mengembalikan pesan yang
// bisa langsung dikoreksi klien; "" kalau valid.
func ValidateStruct(s interface{}) string {
	err := validate.Struct(s)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "payload is not valid"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s cannot be empty", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "latitude":
		return fmt.Sprintf("%s must be a valid latitude", fe.Field())
	case "longitude":
		return fmt.Sprintf("%s must be a valid longitude", fe.Field())
	default:
		return fmt.Sprintf("%s is not valid", fe.Field())
	}
}
