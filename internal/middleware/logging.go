package middleware

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Logging middleware that logs route, status code, response time and how the
// client authenticated.
func Logging() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${auth} | ${method} | ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     os.Stderr,
		CustomTags: map[string]logger.LogFunc{
			"latency": func(output logger.Buffer, _ *fiber.Ctx, data *logger.Data, _ string) (int, error) {
				latency := float64(data.Stop.Sub(data.Start).Nanoseconds()) / float64(time.Millisecond)
				return fmt.Fprintf(output, "%8.1fms", latency)
			},
			"auth": func(output logger.Buffer, c *fiber.Ctx, _ *logger.Data, _ string) (int, error) {
				switch {
				case c.Get(TokenHeader) != "":
					return output.WriteString("token")
				case c.Get(fiber.HeaderAuthorization) != "":
					return output.WriteString("basic")
				}
				return output.WriteString("-    ")
			},
		},
		// Websocket connections are long-lived and logged by their handler.
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/ws"
		},
	})
}
