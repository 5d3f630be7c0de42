package middleware

import (
	"errors"
	"log"

	"github.com/AndrewSs45/Projecto-Algebra/internal/service"
	"github.com/gofiber/fiber/v2"
)

// SessionKey is the locals key holding the resolved *service.Session.
const SessionKey = "session"

// SessionResolver looks a session up by id.
type SessionResolver interface {
	Session(sessionID string) (*service.Session, error)
}

// EnsureSession resolves the :sessionId route parameter and stores the
// session in locals for the handlers behind it.
func EnsureSession(resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Params("sessionId")
		if sessionID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "session ID is required",
			})
		}

		session, err := resolver.Session(sessionID)
		if err != nil {
			if errors.Is(err, service.ErrSessionNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			log.Printf("resolve session %s: %v", sessionID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to load session",
			})
		}

		c.Locals(SessionKey, session)
		return c.Next()
	}
}

// SessionFrom returns the session stored by EnsureSession.
func SessionFrom(c *fiber.Ctx) *service.Session {
	session, _ := c.Locals(SessionKey).(*service.Session)
	return session
}
