package utils

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AllowedImageContentTypes is the set of allowed content types for image uploads.
var AllowedImageContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// MaxUploadSize is the maximum allowed file size for uploads (5MB).
const MaxUploadSize = 5 << 20 // 5MB

// ValidateFileUpload checks that the uploaded file has a valid image content type
// and does not exceed the maximum file size.
func ValidateFileUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxUploadSize {
		return fmt.Errorf("file size %d bytes exceeds maximum allowed size of 5MB", fh.Size)
	}

	contentType := fh.Header.Get("Content-Type")
	if !AllowedImageContentTypes[contentType] {
		return fmt.Errorf("invalid file type '%s'; allowed types: image/jpeg, image/png, image/webp, image/gif", contentType)
	}

	return nil
}

// FieldError describes a single failing field and the reason it failed.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// FieldErrors aggregates field-level validation failures into one error value.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for _, e := range fe {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Reason))
	}
	return strings.Join(msgs, "; ")
}

// ValidateSignup checks signup fields explicitly: username 3-10 characters,
// email non-empty and at most 50 characters, password 6-40 characters.
func ValidateSignup(username, email, password string) error {
	var errs FieldErrors

	switch n := len(strings.TrimSpace(username)); {
	case n == 0:
		errs = append(errs, FieldError{"username", "is required"})
	case n < 3 || n > 10:
		errs = append(errs, FieldError{"username", "must be between 3 and 10 characters"})
	}

	switch {
	case strings.TrimSpace(email) == "":
		errs = append(errs, FieldError{"email", "is required"})
	case len(email) > 50:
		errs = append(errs, FieldError{"email", "must be at most 50 characters"})
	case !strings.Contains(email, "@"):
		errs = append(errs, FieldError{"email", "must be a valid email address"})
	}

	switch n := len(password); {
	case n == 0:
		errs = append(errs, FieldError{"password", "is required"})
	case n < 6 || n > 40:
		errs = append(errs, FieldError{"password", "must be between 6 and 40 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateAddress checks address fields explicitly: every field is required,
// country must be at least 2 characters and the rest at least 3.
func ValidateAddress(street, buildingName, city, state, country, pincode string) error {
	var errs FieldErrors

	check := func(field, value string, min int) {
		switch n := len(strings.TrimSpace(value)); {
		case n == 0:
			errs = append(errs, FieldError{field, "is required"})
		case n < min:
			errs = append(errs, FieldError{field, fmt.Sprintf("must be at least %d characters", min)})
		}
	}

	check("street", street, 3)
	check("building_name", buildingName, 3)
	check("city", city, 3)
	check("state", state, 3)
	check("country", country, 2)
	check("pincode", pincode, 3)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SanitizeValidationError takes a binding error and returns a user-friendly
// message without leaking internal Go struct names.
func SanitizeValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Invalid request body"
	}

	var messages []string
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, fe.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", field))
		}
	}

	if len(messages) == 0 {
		return "Invalid request body"
	}

	return strings.Join(messages, "; ")
}
