package http

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/desertfarm/backend/internal/domain"
	"github.com/desertfarm/backend/pkg/utils"
)

// Number is a JSON number that never fails decoding. A missing or null value
// stays unset; anything that is not a finite number is recorded as NaN so
// validation can report it next to every other violation.
type Number struct {
	value *float64
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.value = nil
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		f = math.NaN()
	}
	n.value = &f
	return nil
}

// Float returns the decoded value, or 0 when unset
func (n Number) Float() float64 {
	if n.value == nil {
		return 0
	}
	return *n.value
}

type weatherBody struct {
	Temperature  Number  `json:"temperature" validate:"required,finite"`
	Humidity     Number  `json:"humidity" validate:"required,finite"`
	Rainfall     Number  `json:"rainfall" validate:"required,finite"`
	WindSpeed    Number  `json:"windSpeed" validate:"required,finite"`
	WeatherCode  Number  `json:"weatherCode" validate:"required,finite"`
	Latitude     Number  `json:"latitude" validate:"required,finite"`
	Longitude    Number  `json:"longitude" validate:"required,finite"`
	LocationName *string `json:"locationName"`
}

type adviceRequestBody struct {
	Query       string      `json:"query" validate:"required,notblank"`
	Language    string      `json:"language" validate:"required,oneof=en ar"`
	WeatherData weatherBody `json:"weatherData"`
}

func (b adviceRequestBody) toDomain() domain.AdviceRequest {
	return domain.AdviceRequest{
		Query:    b.Query,
		Language: domain.Language(b.Language),
		Weather: domain.WeatherReading{
			Temperature:  b.WeatherData.Temperature.Float(),
			Humidity:     b.WeatherData.Humidity.Float(),
			Rainfall:     b.WeatherData.Rainfall.Float(),
			WindSpeed:    b.WeatherData.WindSpeed.Float(),
			WeatherCode:  int(utils.RoundWhole(b.WeatherData.WeatherCode.Float())),
			Latitude:     b.WeatherData.Latitude.Float(),
			Longitude:    b.WeatherData.Longitude.Float(),
			LocationName: b.WeatherData.LocationName,
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if n, ok := field.Interface().(Number); ok {
			return n.value
		}
		return nil
	}, Number{})

	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// parseAdviceRequest decodes and validates a raw advice request body.
// Every violated field is reported, not just the first.
func parseAdviceRequest(body []byte) (domain.AdviceRequest, error) {
	var (
		req        adviceRequestBody
		violations []domain.FieldViolation
	)

	if err := json.Unmarshal(body, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return domain.AdviceRequest{}, &domain.ValidationError{
				Violations: []domain.FieldViolation{{Field: "body", Message: "Malformed JSON body"}},
			}
		}
		violations = append(violations, domain.FieldViolation{
			Field:   typeErr.Field,
			Message: "Expected " + typeErr.Type.String() + ", received " + typeErr.Value,
		})
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.AdviceRequest{}, err
		}
		for _, fe := range verrs {
			field := fieldPath(fe.Namespace())
			if hasViolation(violations, field) {
				continue
			}
			violations = append(violations, domain.FieldViolation{
				Field:   field,
				Message: violationMessage(fe),
			})
		}
	}

	if len(violations) > 0 {
		return domain.AdviceRequest{}, &domain.ValidationError{Violations: violations}
	}
	return req.toDomain(), nil
}

func hasViolation(violations []domain.FieldViolation, field string) bool {
	for _, v := range violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

// fieldPath drops the root struct name: "adviceRequestBody.weatherData.humidity"
// becomes "weatherData.humidity".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "notblank":
		return "Query cannot be empty"
	case "oneof":
		return "Invalid enum value. Expected 'en' | 'ar'"
	case "finite":
		return "Expected number"
	default:
		return "Invalid value"
	}
}
