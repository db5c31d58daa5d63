// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cityfile

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate *validator.Validate
	// ErrTranslations is the English translator for the validation errors.
	ErrTranslations ut.Translator
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	// report the field names as they appear in the file.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	ErrTranslations, _ = uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, ErrTranslations); err != nil {
		panic(err)
	}
}

// ValidationError is returned when the city definition fails validation.
type ValidationError struct {
	Errs validator.ValidationErrors
}

func (ve *ValidationError) Error() string {
	return "city validation failed: " + strings.Join(ve.Problems(), "; ")
}

func (ve *ValidationError) Unwrap() error {
	return ve.Errs
}

// Problems returns the human readable list of problems.
func (ve *ValidationError) Problems() []string {
	pp := make([]string, 0, len(ve.Errs))
	for _, e := range ve.Errs {
		pp = append(pp, e.Translate(ErrTranslations))
	}
	return pp
}

// Validate validates the city definition.
func (c *City) Validate() error {
	if err := validate.Struct(c); err != nil {
		var vErr validator.ValidationErrors
		if errors.As(err, &vErr) {
			return &ValidationError{Errs: vErr}
		}
		return err
	}
	return nil
}
