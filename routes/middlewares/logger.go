package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/zsmartex/passbook/config"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an id and logs its outcome.
func RequestLogger(c *fiber.Ctx) error {
	request_id := c.Get(RequestIDHeader)
	if len(request_id) == 0 {
		request_id = uuid.New().String()
	}
	c.Set(RequestIDHeader, request_id)

	started_at := time.Now()
	err := c.Next()

	fields := logrus.Fields{
		"request_id": request_id,
		"method":     c.Method(),
		"path":       c.Path(),
		"status":     c.Response().StatusCode(),
		"latency":    time.Since(started_at).String(),
	}

	if current_user := CurrentUser(c); current_user != nil {
		fields["uid"] = current_user.UID
	}

	if err != nil {
		config.Logger.WithFields(fields).Errorf("Request error: %v", err)
	} else {
		config.Logger.WithFields(fields).Info("Request handled")
	}

	return err
}
