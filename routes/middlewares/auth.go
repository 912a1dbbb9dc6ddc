package middlewares

import (
	"crypto/rsa"
	"encoding/base64"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/passbook/controllers/helpers"
	"github.com/zsmartex/passbook/types"
)

// Auth struct represents parsed jwt information.
type Auth struct {
	UID      string          `json:"uid"`
	State    types.UserState `json:"state"`
	Email    string          `json:"email"`
	Username string          `json:"username"`
	Role     types.Role      `json:"role"`
	BranchID int64           `json:"branch_id"`
	Audience []string        `json:"aud,omitempty"`

	jwt.StandardClaims
}

// ParsePublicKey decodes a base64 encoded RSA public key in PEM form.
func ParsePublicKey(encoded string) (*rsa.PublicKey, error) {
	public_key_pem, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	return jwt.ParseRSAPublicKeyFromPEM(public_key_pem)
}

func Authenticate(public_key *rsa.PublicKey) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")

		if len(token) == 0 {
			return c.Status(401).JSON(helpers.Errors{
				Errors: []string{helpers.AuthzInvalidSession},
			})
		}

		token = strings.Replace(token, "Bearer ", "", -1)

		auth := new(Auth)
		_, err := jwt.ParseWithClaims(token, auth, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return public_key, nil
		})

		if err != nil {
			return c.Status(401).JSON(helpers.Errors{
				Errors: []string{helpers.JwtDecodeAndVerify},
			})
		}

		if auth.State != types.UserStateActive {
			return c.Status(401).JSON(helpers.Errors{
				Errors: []string{helpers.AuthzInvalidSession},
			})
		}

		c.Locals("CurrentUser", auth)

		return c.Next()
	}
}

func CurrentUser(c *fiber.Ctx) *Auth {
	auth, _ := c.Locals("CurrentUser").(*Auth)

	return auth
}
