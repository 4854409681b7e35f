package routes

import (
	"KisaanPartner-Backend/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// labourRoutes กำหนดเส้นทางสำหรับ Labour API
// path คงที่ต้องมาก่อน /:id
func labourRoutes(app *fiber.App, h *controllers.LabourController) {
	labour := app.Group("/labour")
	labour.Post("/", h.CreateLabourer)                                             // สร้างแรงงานใหม่
	labour.Get("/", h.GetAllLabourers)                                             // ดึงแรงงานทั้งหมด
	labour.Get("/villages", h.GetVillages)                                         // รายชื่อหมู่บ้าน
	labour.Post("/seed", h.SeedLabourData)                                         // ข้อมูลตัวอย่าง
	labour.Post("/reconcile", h.ReconcileAllLabourers)                             // นับวันมาทำงานใหม่ทั้งหมด
	labour.Get("/farmer/:farmerId/assignments", h.GetFarmerAssignments)            // งานของเกษตรกร
	labour.Get("/farmer/:farmerId/assignments/export", h.ExportFarmerAssignments) // export .xlsx
	labour.Post("/attendance/:assignmentId", h.ConfirmAttendance)                  // เช็คชื่อ
	labour.Get("/attendance/:id", h.GetAssignment)                                 // ดึง assignment
	labour.Post("/:labourId/assign", h.AssignLabour)                               // มอบหมายงาน
	labour.Post("/:id/reconcile", h.ReconcileLabourer)                             // นับวันมาทำงานใหม่
	labour.Get("/:id", h.GetLabourerByID)                                          // ดึงแรงงานตาม ID
	labour.Delete("/:id", h.DeactivateLabourer)                                    // soft delete
	labour.Delete("/:id/permanent", h.DeleteLabourer)                              // ลบถาวร
}
