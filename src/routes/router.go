package routes

import (
	"KisaanPartner-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Handlers รวม controller ทั้งหมดที่ router ต้องใช้
type Handlers struct {
	Labour   *controllers.LabourController
	Employee *controllers.EmployeeController
	Health   *controllers.HealthController
}

func InitRoutes(app *fiber.App, h Handlers) {
	labourRoutes(app, h.Labour)
	employeeRoutes(app, h.Employee)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/health", h.Health.Health)
}
