package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"mergington.dev/backend/internal/pkg/apperr"
	"mergington.dev/backend/internal/util"
	"mergington.dev/backend/internal/util/i18n"
)

var Validate = util.NewValidator()

func init() {
	entr, _ := i18n.UT.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// translate translates errors into ErrorResponses
func translate(utt ut.Translator, ve validator.ValidationErrors) []*ErrorResponse {
	trans := make([]*ErrorResponse, 0, len(ve))

	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   util.EndSentence(fe.Translate(utt)),
		})
	}

	return trans
}

func validateStruct(ctx *fiber.Ctx, s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(TranslatorFromCtx(ctx), errs)
	}
	return nil
}

// ValidQuery parses the query string of ctx into dest using fiber#QueryParser()
// and validates it with the validator singleton. dest shall always be a pointer.
func ValidQuery(ctx *fiber.Ctx, dest any) error {
	if err := ctx.QueryParser(dest); err != nil {
		return apperr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

// ValidStruct validates an already populated dest.
func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if err := validateStruct(ctx, dest); err != nil {
		return apperr.NewInvalidViolations(err)
	}

	return nil
}
