package utils

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Notice is the transient user-visible message channel (the toast of the
// browser UI). Level is one of "info", "success", "error".
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

const (
	NoticeInfo    = "info"
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// SuccessResponse структура для успешных ответов
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Notice  *Notice     `json:"notice,omitempty"`
}

// ErrorResponse структура для ошибок
type ErrorResponse struct {
	Success  bool        `json:"success"`
	Error    string      `json:"error"`
	Message  string      `json:"message,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
	Details  interface{} `json:"details,omitempty"`
	Notice   *Notice     `json:"notice,omitempty"`
}

// Success создает успешный JSON ответ
func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// SuccessWithNotice создает успешный JSON ответ с уведомлением
func SuccessWithNotice(c *fiber.Ctx, status int, data interface{}, level, message string) error {
	return c.Status(status).JSON(SuccessResponse{
		Success: true,
		Data:    data,
		Notice:  &Notice{Level: level, Message: message},
	})
}

// Error создает JSON ответ с ошибкой
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: message,
		Notice:  &Notice{Level: NoticeError, Message: message},
	})
}

// Unauthorized отправляет 401 с перенаправлением на страницу входа
func Unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
		Success:  false,
		Error:    http.StatusText(fiber.StatusUnauthorized),
		Message:  message,
		Redirect: "/login",
		Notice:   &Notice{Level: NoticeError, Message: message},
	})
}

// Forbidden отправляет ответ 403 Forbidden
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// BadRequest отправляет ответ 400 Bad Request
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// ValidationError создает JSON ответ для ошибок валидации
func ValidationError(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{
		Success: false,
		Error:   "Validation Error",
		Message: "All fields are required!",
		Details: errors,
		Notice:  &Notice{Level: NoticeError, Message: "All fields are required!"},
	})
}
