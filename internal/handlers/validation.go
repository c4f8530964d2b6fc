package handlers

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-veritas/internal/models"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// validate checks request structs by their `validate` tags. Field errors
// carry the json name of the field.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	rules := map[string]validator.Func{
		"username": func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		},
		"hasupper": containsRune(unicode.IsUpper),
		"haslower": containsRune(unicode.IsLower),
		"hasdigit": containsRune(unicode.IsDigit),
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

func containsRune(class func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), class) >= 0
	}
}

// validationMessages maps "<json field>.<tag>" to the message returned to clients.
var validationMessages = map[string]string{
	"title.required":       "Title cannot be empty",
	"title.max":            "Title max 200 characters",
	"description.required": "Description cannot be empty",
	"description.max":      "Description max 10,000 characters",
	"type.required":        "Type must be one of: idea, work, asset",
	"type.oneof":           "Type must be one of: idea, work, asset",
	"file_url.url":         "Invalid file URL",
	"file_url.startswith":  "Only HTTPS URLs allowed",
	"file_url.max":         "URL max 500 characters",
	"decision.required":    "Decision must be one of: APPROVE, REJECT, REQUEST_CHANGES",
	"decision.oneof":       "Decision must be one of: APPROVE, REJECT, REQUEST_CHANGES",
	"notes.max":            "Notes max 5,000 characters",
	"username.required":    "Username required",
	"username.min":         "Username must be 3-50 characters",
	"username.max":         "Username must be 3-50 characters",
	"username.username":    "Username must be alphanumeric (underscores allowed)",
	"email.required":       "Invalid email address",
	"email.email":          "Invalid email address",
	"email.max":            "Email max 255 characters",
	"password.required":    "Password must be at least 8 characters",
	"password.min":         "Password must be at least 8 characters",
	"password.hasupper":    "Password must contain uppercase letter",
	"password.haslower":    "Password must contain lowercase letter",
	"password.hasdigit":    "Password must contain digit",
}

// validationError validates s and turns the first failed rule into a client message.
func validationError(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	if msg, ok := validationMessages[fe.Field()+"."+fe.Tag()]; ok {
		return errors.New(msg)
	}
	return errors.New("Invalid " + fe.Field())
}

// trimOptional trims v and turns blank strings into nil.
func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// validateCandidate trims and validates a submission request.
func validateCandidate(req SubmissionRequest) (models.ContributionCandidate, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.FileURL = trimOptional(req.FileURL)

	if err := validationError(req); err != nil {
		return models.ContributionCandidate{}, err
	}

	typ, err := models.ParseContributionType(req.Type)
	if err != nil {
		return models.ContributionCandidate{}, errors.New(validationMessages["type.oneof"])
	}
	return models.ContributionCandidate{
		Title:       req.Title,
		Description: req.Description,
		Type:        typ,
		FileURL:     req.FileURL,
	}, nil
}

// validateVerify validates a decision request and returns the decision and
// trimmed notes, nil when blank.
func validateVerify(req VerifyRequest) (models.Decision, *string, error) {
	req.Notes = trimOptional(req.Notes)

	if err := validationError(req); err != nil {
		return "", nil, err
	}

	decision, err := models.ParseDecision(req.Decision)
	if err != nil {
		return "", nil, errors.New(validationMessages["decision.oneof"])
	}
	return decision, req.Notes, nil
}

// ValidateRegistration checks new account credentials and returns the
// lower-cased username and the trimmed email.
func ValidateRegistration(username, password, email string) (string, string, error) {
	req := RegisterRequest{
		Username: username,
		Password: password,
		Email:    strings.TrimSpace(email),
	}
	if err := validationError(req); err != nil {
		return "", "", err
	}
	return strings.ToLower(req.Username), req.Email, nil
}
