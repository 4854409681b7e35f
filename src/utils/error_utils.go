// error_utils.go
package utils

import (
	"KisaanPartner-Backend/src/models"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error kinds shared by every service. Match with errors.Is.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrConcurrentUpdate = errors.New("concurrent update")
	ErrPersistence      = errors.New("store persistence failure")
)

// AppError คือ error ที่มีประเภท (Kind) และข้อความสำหรับส่งกลับให้ client
type AppError struct {
	Kind    error
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func InvalidInput(message string) error {
	return &AppError{Kind: ErrInvalidInput, Message: message}
}

func NotFound(message string) error {
	return &AppError{Kind: ErrNotFound, Message: message}
}

func Conflict(message string) error {
	return &AppError{Kind: ErrConflict, Message: message}
}

func ConcurrentUpdate(message string) error {
	return &AppError{Kind: ErrConcurrentUpdate, Message: message}
}

// Persistence wraps a driver error. The driver message never reaches the client.
func Persistence(message string, err error) error {
	return &AppError{Kind: ErrPersistence, Message: message, Err: err}
}

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConcurrentUpdate):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && !errors.Is(err, ErrPersistence) {
		return appErr.Message
	}
	return "Internal server error"
}

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Success: false,
		Status:  status,
		Message: message,
	})
}

// HandleServiceError ส่ง error จาก service กลับไปเป็น JSON ตาม taxonomy
func HandleServiceError(c *fiber.Ctx, err error) error {
	return HandleError(c, StatusOf(err), MessageOf(err))
}
