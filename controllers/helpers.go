package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnhub-web/middleware"
	"learnhub-web/models"
	"learnhub-web/platform"
	"learnhub-web/session"
	"learnhub-web/utils"
)

// identify resolves the calling user against the platform API. When it
// returns a nil user the response has already been written and the handler
// must return the accompanying error value as-is.
//
// A failed user fetch is treated as session-invalid: clear and redirect to
// login, whatever feature triggered it.
func identify(c *fiber.Ctx, api *platform.Client, sessions *session.Manager) (*models.User, session.Session, error) {
	sess := middleware.CurrentSession(c)
	if sess.Token == "" {
		var err error
		sess, err = sessions.Current(c)
		if err != nil {
			return nil, session.Session{}, utils.Unauthorized(c, "Please log in to continue.")
		}
	}

	user, err := api.CurrentUser(c.Context(), sess.Token)
	if err != nil {
		sessions.Clear(c)
		return nil, session.Session{}, utils.Unauthorized(c, "Your session has expired. Please log in again.")
	}
	return user, sess, nil
}

// sessionToken reads the persisted bearer token for the outgoing platform
// call, preferring the session the guard already verified.
func sessionToken(c *fiber.Ctx, sessions *session.Manager) string {
	if sess := middleware.CurrentSession(c); sess.Token != "" {
		return sess.Token
	}
	return sessions.Token(c)
}

// respondUpstream converts a platform API error into the renderable failure
// state: auth failures invalidate the session, everything else becomes a
// transient notice with the upstream message when present.
func respondUpstream(c *fiber.Ctx, sessions *session.Manager, err error, fallback string) error {
	if errors.Is(err, platform.ErrUnauthorized) {
		sessions.Clear(c)
		return utils.Unauthorized(c, "Your session has expired. Please log in again.")
	}
	return utils.Error(c, fiber.StatusBadGateway, platform.Message(err, fallback))
}
