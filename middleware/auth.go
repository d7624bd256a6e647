package middleware

import (
	"github.com/gofiber/fiber/v2"

	"learnhub-web/models"
	"learnhub-web/session"
	"learnhub-web/utils"
)

const sessionKey = "session"

// RequireSession gates the protected view trees. Absence of a session is
// not an error, just a redirect to the login view.
func RequireSession(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Current(c)
		if err != nil {
			return utils.Unauthorized(c, "Please log in to continue.")
		}
		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

// RequireRole mounts exactly one view tree per role. An unrecognized role
// never falls through to either tree: it is answered as the terminal
// contact-support state.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := CurrentSession(c)
		switch sess.Role {
		case role:
			return c.Next()
		case models.RoleStudent, models.RoleInstructor:
			return utils.Forbidden(c, "This area is not available for your role.")
		default:
			return utils.Forbidden(c, "Your role is not recognized. Please contact support.")
		}
	}
}

// CurrentSession returns the session stored by RequireSession. Zero value
// when called outside a guarded route.
func CurrentSession(c *fiber.Ctx) session.Session {
	sess, _ := c.Locals(sessionKey).(session.Session)
	return sess
}
