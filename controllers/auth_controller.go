package controllers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"learnhub-web/config"
	"learnhub-web/models"
	"learnhub-web/platform"
	"learnhub-web/session"
	"learnhub-web/utils"
)

const oauthStateCookie = "oauth_state"

type AuthController struct {
	API      *platform.Client
	Sessions *session.Manager
	Cfg      *config.Config
	OAuth    *oauth2.Config
}

func NewAuthController(api *platform.Client, sessions *session.Manager, cfg *config.Config) *AuthController {
	ac := &AuthController{API: api, Sessions: sessions, Cfg: cfg}
	if cfg.GoogleEnabled() {
		ac.OAuth = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	}
	return ac
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login forwards the credentials to the platform API and, on success,
// persists (token, role) as one unit. A 2xx answer without a token is its
// own failure mode, distinct from rejected credentials: the user stays
// anonymous and no navigation happens.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	if sess, err := ac.Sessions.Current(c); err == nil {
		return utils.SuccessWithNotice(c, fiber.StatusOK,
			fiber.Map{"role": sess.Role},
			utils.NoticeInfo, "You are already signed in.")
	}

	result, err := ac.API.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, platform.ErrUnauthorized) {
			return utils.Error(c, fiber.StatusUnauthorized,
				platform.Message(err, "Login failed! Please check your credentials."))
		}
		return utils.Error(c, fiber.StatusBadGateway,
			platform.Message(err, "Login failed! Please try again."))
	}

	if result.Token == "" {
		return utils.Error(c, fiber.StatusBadGateway, "Login successful, but no token received.")
	}

	role := models.ParseRole(result.Role)
	if err := ac.Sessions.Set(c, result.Token, role); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not establish session")
	}

	return utils.SuccessWithNotice(c, fiber.StatusOK,
		fiber.Map{"role": role},
		utils.NoticeSuccess, "Login successful!")
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=student instructor"`
}

// Register creates the account upstream. Success points the user at the
// login view; it never auto-authenticates.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	err := ac.API.Register(c.Context(), platform.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway,
			platform.Message(err, "Registration failed. Please try again."))
	}

	return utils.SuccessWithNotice(c, fiber.StatusCreated,
		fiber.Map{"redirect": "/login"},
		utils.NoticeSuccess, "Registration successful! Please log in.")
}

// GoogleLogin начинает federated-вход: редирект на страницу согласия Google
func (ac *AuthController) GoogleLogin(c *fiber.Ctx) error {
	if ac.OAuth == nil {
		return utils.Error(c, fiber.StatusServiceUnavailable, "Google sign-in is not configured.")
	}

	state := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Expires:  time.Now().Add(10 * time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return c.Redirect(ac.OAuth.AuthCodeURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback finishes the provider dance and hands the credential to
// the platform API. A first-time user gets the pending profile back and no
// session; an existing user needs both token and role or the flow fails.
func (ac *AuthController) GoogleCallback(c *fiber.Ctx) error {
	if ac.OAuth == nil {
		return utils.Error(c, fiber.StatusServiceUnavailable, "Google sign-in is not configured.")
	}

	state := c.Query("state")
	if state == "" || state != c.Cookies(oauthStateCookie) {
		return utils.BadRequest(c, "Invalid OAuth state")
	}
	c.Cookie(&fiber.Cookie{
		Name:    oauthStateCookie,
		Value:   "",
		Expires: time.Now().Add(-time.Hour),
		Path:    "/",
	})

	code := c.Query("code")
	if code == "" {
		return utils.BadRequest(c, "Missing authorization code")
	}

	tok, err := ac.OAuth.Exchange(c.Context(), code)
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway, "Google login failed. Please try again later.")
	}

	credential, _ := tok.Extra("id_token").(string)
	if credential == "" {
		credential = tok.AccessToken
	}

	return ac.finishGoogleLogin(c, credential, func() (*models.GoogleProfile, error) {
		return ac.fetchGoogleProfile(c.Context(), tok)
	})
}

// finishGoogleLogin hands the provider credential to the platform API and
// renders the outcome. A first-time user gets the pending profile back and
// explicitly no session; a returning user needs both token and role or the
// flow fails. profile is the fallback lookup for when the platform omits the
// pending profile.
func (ac *AuthController) finishGoogleLogin(c *fiber.Ctx, credential string, profile func() (*models.GoogleProfile, error)) error {
	result, err := ac.API.GoogleLogin(c.Context(), credential)
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway,
			platform.Message(err, "Google login failed. Please try again."))
	}

	if result.IsNewUser {
		pending := result.GoogleUser
		if pending == nil && profile != nil {
			pending, err = profile()
			if err != nil {
				return utils.Error(c, fiber.StatusBadGateway, "Could not read your Google profile.")
			}
		}
		if pending == nil {
			return utils.Error(c, fiber.StatusBadGateway, "Could not read your Google profile.")
		}
		// Session establishment is withheld until the user picks a role.
		return utils.SuccessWithNotice(c, fiber.StatusOK,
			fiber.Map{"isNewUser": true, "googleUser": pending},
			utils.NoticeInfo, "Please select a role to continue.")
	}

	if result.Token == "" || result.Role == "" {
		return utils.Error(c, fiber.StatusBadGateway, "Unexpected response during Google login.")
	}

	role := models.ParseRole(result.Role)
	if err := ac.Sessions.Set(c, result.Token, role); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not establish session")
	}

	return utils.SuccessWithNotice(c, fiber.StatusOK,
		fiber.Map{"role": role},
		utils.NoticeSuccess, "Google login successful!")
}

type CompleteSignupInput struct {
	GoogleUser models.GoogleProfile `json:"googleUser"`
	Role       string               `json:"role"`
}

// CompleteGoogleSignup finalizes a first-time federated signup with the
// client-chosen role and establishes the session.
func (ac *AuthController) CompleteGoogleSignup(c *fiber.Ctx) error {
	var input CompleteSignupInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	role := models.ParseRole(input.Role)
	if !role.Recognized() {
		return utils.Error(c, fiber.StatusUnprocessableEntity, "Please select a role to continue")
	}

	result, err := ac.API.CompleteGoogleSignup(c.Context(), input.GoogleUser, role.String())
	if err != nil {
		return utils.Error(c, fiber.StatusBadGateway,
			platform.Message(err, "Account creation failed. Please try again."))
	}
	if result.Token == "" {
		return utils.Error(c, fiber.StatusBadGateway, "Account creation failed.")
	}

	if err := ac.Sessions.Set(c, result.Token, role); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, "Could not establish session")
	}

	return utils.SuccessWithNotice(c, fiber.StatusCreated,
		fiber.Map{"role": role},
		utils.NoticeSuccess, "Account created successfully!")
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.Sessions.Clear(c)
	return utils.SuccessWithNotice(c, fiber.StatusOK, nil,
		utils.NoticeInfo, "You have been signed out.")
}

// Session answers who is currently signed in, resolving the role with the
// persisted fallback. An upstream failure here invalidates the session.
func (ac *AuthController) Session(c *fiber.Ctx) error {
	sess, err := ac.Sessions.Current(c)
	if err != nil {
		return utils.Unauthorized(c, "Please log in to continue.")
	}

	user, err := ac.API.CurrentUser(c.Context(), sess.Token)
	if err != nil {
		ac.Sessions.Clear(c)
		return utils.Unauthorized(c, "Your session has expired. Please log in again.")
	}

	role := session.ResolveRole(user, sess.Role)
	if sess.Role == models.RoleUnknown && role.Recognized() {
		// Upgrade a session persisted before the role was known.
		_ = ac.Sessions.Set(c, sess.Token, role)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user": fiber.Map{"id": user.ID, "email": user.Email, "role": role},
	})
}

// Dashboard is the role router: the resolved role picks exactly one of the
// two view trees. Anything else is the terminal contact-support state, never
// a guessed tree.
func (ac *AuthController) Dashboard(c *fiber.Ctx) error {
	user, sess, err := identify(c, ac.API, ac.Sessions)
	if user == nil {
		return err
	}

	role := session.ResolveRole(user, sess.Role)
	account := fiber.Map{"id": user.ID, "email": user.Email, "role": role}

	switch role {
	case models.RoleInstructor:
		return utils.Success(c, fiber.StatusOK, fiber.Map{"view": "instructor", "user": account})
	case models.RoleStudent:
		return utils.Success(c, fiber.StatusOK, fiber.Map{"view": "student", "user": account})
	default:
		shown := user.Role
		if shown == "" {
			shown = models.RoleUnknown.String()
		}
		return utils.Success(c, fiber.StatusOK, fiber.Map{
			"view": "unrecognized",
			"user": account,
			"message": fmt.Sprintf(
				"Your role (%s) is not recognized. Please contact support.", shown),
		})
	}
}

func (ac *AuthController) fetchGoogleProfile(ctx context.Context, tok *oauth2.Token) (*models.GoogleProfile, error) {
	svc, err := googleoauth.NewService(ctx,
		option.WithTokenSource(ac.OAuth.TokenSource(ctx, tok)))
	if err != nil {
		return nil, err
	}
	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		return nil, err
	}
	return &models.GoogleProfile{
		GoogleID:  info.Id,
		Email:     info.Email,
		FirstName: info.GivenName,
		LastName:  info.FamilyName,
	}, nil
}
