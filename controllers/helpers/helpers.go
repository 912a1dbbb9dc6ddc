package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gookit/validate"

	"github.com/zsmartex/passbook/config"
	"github.com/zsmartex/passbook/repositories"
	"github.com/zsmartex/passbook/services"
)

var (
	ServerInternalError = "server.internal_error"
	ServerInvalidQuery  = "server.method.invalid_query"
	ServerInvalidBody   = "server.method.invalid_message_body"
	RecordNotFound      = "record.not_found"
	AuthzInvalidSession = "authz.invalid_session"
	AuthzPermission     = "authz.invalid_permission"
	JwtDecodeAndVerify  = "jwt.decode_and_verify"
)

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func Vaildate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

// ResponseError renders a service error: validation failures become 422,
// missing records 404, anything else 500.
func ResponseError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError

	switch {
	case errors.As(err, &verr):
		return c.Status(422).JSON(Errors{
			Errors: []string{verr.Message},
		})
	case errors.Is(err, repositories.ErrRecordNotFound):
		return c.Status(404).JSON(Errors{
			Errors: []string{RecordNotFound},
		})
	default:
		config.Logger.WithField("path", c.Path()).Errorf("Request failed: %v", err)

		return c.Status(500).JSON(Errors{
			Errors: []string{ServerInternalError},
		})
	}
}
