package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ignatzorin/creative-network/internal/domain/valueobject"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
)

// Validator — обёртка над go-playground/validator, возвращающая apperror с ошибками по полям.
type Validator struct {
	validate *validator.Validate
}

var (
	defaultOnce sync.Once
	defaultV    *Validator
)

// New создаёт валидатор с json-именами полей и собственными правилами.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "jobtype", func(fl validator.FieldLevel) bool {
		return valueobject.JobType(fl.Field().String()).IsValid()
	})
	mustRegister(v, "servicecategory", func(fl validator.FieldLevel) bool {
		return valueobject.ServiceCategory(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: не удалось зарегистрировать правило %s: %v", tag, err))
	}
}

// Default возвращает общий экземпляр валидатора.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultV = New()
	})
	return defaultV
}

// Struct проверяет структуру общим валидатором.
func Struct(i any) error {
	return Default().Validate(i)
}

// Validate возвращает *apperror.AppError с кодом VALIDATION_ERROR при нарушениях.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperror.Wrap(err, apperror.ErrCodeInternal, "ошибка валидации")
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		name := fieldPath(fe)
		if _, exists := fields[name]; !exists {
			fields[name] = message(fe)
		}
	}
	return apperror.Validation(fields)
}

// fieldPath убирает имя корневой структуры из пространства имён ошибки.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "обязательное поле"
	case "email":
		return "некорректный email"
	case "min":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("должно быть не менее %s символов", fe.Param())
		}
		return fmt.Sprintf("должно быть не меньше %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("не более %s элементов", fe.Param())
		}
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("должно быть не более %s символов", fe.Param())
		}
		return fmt.Sprintf("должно быть не больше %s", fe.Param())
	case "gte":
		return fmt.Sprintf("должно быть не меньше %s", fe.Param())
	case "lte":
		return fmt.Sprintf("должно быть не больше %s", fe.Param())
	case "url":
		return "некорректный URL"
	case "uuid":
		return "некорректный идентификатор"
	case "jobtype":
		return "неизвестный тип занятости"
	case "servicecategory":
		return "неизвестная категория"
	default:
		return fmt.Sprintf("некорректное значение (%s)", fe.Tag())
	}
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.String || k == reflect.Slice || k == reflect.Map
}
