package routes

import (
	"KisaanPartner-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// employeeRoutes กำหนดเส้นทางสำหรับ Employee API
func employeeRoutes(app *fiber.App, h *controllers.EmployeeController) {
	employee := app.Group("/employee")
	employee.Post("/", h.RegisterEmployee)                                 // ลงทะเบียนพนักงาน
	employee.Get("/", h.GetEmployees)                                      // ดึงพนักงานทั้งหมด
	employee.Get("/stats", h.GetEmployeeStats)                             // สถิติ
	employee.Get("/by-employee-id/:employeeId", h.GetEmployeeByEmployeeID) // ค้นหาด้วยรหัสพนักงาน
	employee.Get("/:id", h.GetEmployeeByID)                                // ดึงพนักงานตาม ID
	employee.Put("/:id", h.UpdateEmployee)                                 // แก้ไขข้อมูล
	employee.Delete("/:id", h.DeactivateEmployee)                          // soft delete
	employee.Delete("/:id/permanent", h.DeleteEmployee)                    // ลบถาวร
}
