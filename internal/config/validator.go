package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/swatch/internal/token"
	swatcherrors "github.com/alexisbeaulieu97/swatch/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	paletteNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("palette_name", func(fl validator.FieldLevel) bool {
			return paletteNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("token_name", func(fl validator.FieldLevel) bool {
			_, ok := token.ParseName(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("scheme", func(fl validator.FieldLevel) bool {
			_, ok := token.ParseScheme(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidatePaletteFile performs schema and cross-field validation on a decoded palette file.
func ValidatePaletteFile(file *PaletteFile) error {
	if file == nil {
		return swatcherrors.NewValidationError("palette", "palette is nil", nil)
	}

	if err := validatorInstance().Struct(file); err != nil {
		return convertValidationError(err)
	}

	names := make([]string, 0, len(file.Tokens))
	for name := range file.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := file.Tokens[name]
		if entry == nil || entry.Light == nil || entry.Dark == nil {
			return swatcherrors.NewValidationError(fieldForToken(name), "light and dark values are required", nil)
		}
		if err := checkKind(name, entry); err != nil {
			return err
		}
		if name == token.Clear.String() && (!entry.Light.IsClear() || !entry.Dark.IsClear()) {
			return swatcherrors.NewValidationError(fieldForToken(name), "clear must stay transparent", nil)
		}
	}

	return nil
}

// checkKind holds dimension tokens to point values and every other token
// to colors, gradients or clear.
func checkKind(name string, entry *TokenEntry) error {
	n, ok := token.ParseName(name)
	if !ok {
		return swatcherrors.NewValidationError(fieldForToken(name), fmt.Sprintf("unknown token name %q", name), nil)
	}

	want := "a color, gradient or clear"
	if n.IsDimension() {
		want = "a dimension in points"
	}
	for _, side := range []struct {
		scheme token.Scheme
		value  *TokenValue
	}{{token.Light, entry.Light}, {token.Dark, entry.Dark}} {
		if !n.Accepts(side.value.Kind) {
			return swatcherrors.NewValidationError(fieldForToken(name),
				fmt.Sprintf("%s value %s must be %s", side.scheme, side.value.Value, want), nil)
		}
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "token_name" {
			msg = fmt.Sprintf("unknown token name %q", ve.Value())
		}
		return swatcherrors.NewValidationError(field, msg, err)
	}

	return swatcherrors.NewValidationError("palette", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts[1:] {
		lowered = append(lowered, strings.ToLower(part[:1])+part[1:])
	}
	if len(lowered) == 0 {
		return strings.ToLower(fe.Field())
	}
	return strings.Join(lowered, ".")
}

func fieldForToken(name string) string {
	return fmt.Sprintf("tokens[%s]", name)
}
