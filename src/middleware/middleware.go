package middleware

import (
	"KisaanPartner-Backend/src/models"
	"errors"
	"path/filepath"
	"strings"

	charmLog "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Setup ติดตั้ง middleware พื้นฐานทั้งหมด
func Setup(app *fiber.App, allowedOrigins string) {
	app.Use(requestid.New())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	}))

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))
}

// ErrorHandler renders errors that escape a handler (404 routes, panics,
// body limit) in the same envelope as HandleServiceError.
func ErrorHandler(log *charmLog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.Error("❌ Unhandled error", "method", c.Method(), "path", c.Path(), "err", err)
		}

		return c.Status(code).JSON(models.ErrorResponse{
			Success: false,
			Status:  code,
			Message: message,
		})
	}
}

// apiPrefixes ไม่ส่ง index.html ให้ path เหล่านี้
var apiPrefixes = []string{"/labour", "/employee", "/swagger", "/health"}

// ServeSPA เสิร์ฟไฟล์ static จาก dir และส่ง index.html สำหรับ path อื่น
// ต้องเรียกหลัง InitRoutes
func ServeSPA(app *fiber.App, dir string) {
	if dir == "" {
		return
	}
	app.Static("/", dir)

	index := filepath.Join(dir, "index.html")
	app.Get("/*", func(c *fiber.Ctx) error {
		for _, prefix := range apiPrefixes {
			if strings.HasPrefix(c.Path(), prefix) {
				return fiber.ErrNotFound
			}
		}
		return c.SendFile(index)
	})
}
