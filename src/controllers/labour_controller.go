package controllers

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/services/attendance"
	"KisaanPartner-Backend/src/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LabourController จัดการ API ของแรงงานและการมอบหมายงาน
type LabourController struct {
	Labours LabourService
	Ledger  *attendance.Ledger
	Jobs    ReconcileQueue
	Timeout time.Duration
}

// CreateLabourer godoc
// @Summary Create labourer
// @Description Register a new day-labourer
// @Tags labour
// @Accept json
// @Produce json
// @Param labour body models.CreateLabourRequest true "Labourer"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /labour [post]
func (h *LabourController) CreateLabourer(c *fiber.Ctx) error {
	var req models.CreateLabourRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	labour, err := h.Labours.Create(ctx, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "Labourer created successfully",
		Data:    labour,
	})
}

// GetAllLabourers godoc
// @Summary List labourers
// @Description Active labourers with today's attendance and attendance summary
// @Tags labour
// @Produce json
// @Param villageName query string false "Village filter"
// @Param search query string false "Search name, village or work type"
// @Success 200 {object} models.APIResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /labour [get]
func (h *LabourController) GetAllLabourers(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	labours, err := h.Labours.List(ctx, models.LabourFilter{
		VillageName: c.Query("villageName"),
		Search:      c.Query("search"),
	})
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ids := make([]primitive.ObjectID, 0, len(labours))
	for _, l := range labours {
		ids = append(ids, l.ID)
	}

	today, err := h.Ledger.TodayAttendance(ctx, ids)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	summaries, err := h.Ledger.SummarizeAttendance(ctx, ids)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	views := make([]models.LabourView, 0, len(labours))
	for _, l := range labours {
		view := models.LabourView{Labour: l, AttendanceSummary: summaries[l.ID]}
		if status, ok := today[l.ID]; ok {
			view.TodayAttendance = &status
		}
		views = append(views, view)
	}

	return c.JSON(models.NewListResponse(views, len(views)))
}

// GetLabourerByID godoc
// @Summary Get labourer
// @Tags labour
// @Produce json
// @Param id path string true "Labour ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /labour/{id} [get]
func (h *LabourController) GetLabourerByID(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"), "Labourer not found")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	labour, err := h.Labours.FindByID(ctx, id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{Success: true, Data: labour})
}

// GetVillages godoc
// @Summary List villages
// @Description Distinct villages of active labourers, sorted
// @Tags labour
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /labour/villages [get]
func (h *LabourController) GetVillages(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	villages, err := h.Labours.Villages(ctx)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.NewListResponse(villages, len(villages)))
}

// SeedLabourData godoc
// @Summary Seed sample labourers
// @Tags labour
// @Produce json
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /labour/seed [post]
func (h *LabourController) SeedLabourData(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	labours, err := h.Labours.Seed(ctx)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	count := len(labours)
	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "Successfully created sample labourers",
		Count:   &count,
		Data:    labours,
	})
}

// DeactivateLabourer godoc
// @Summary Deactivate labourer
// @Tags labour
// @Param id path string true "Labour ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /labour/{id} [delete]
func (h *LabourController) DeactivateLabourer(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"), "Labourer not found")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if err := h.Labours.Deactivate(ctx, id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{Success: true, Message: "Labourer deactivated successfully"})
}

// DeleteLabourer godoc
// @Summary Permanently delete labourer
// @Tags labour
// @Param id path string true "Labour ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /labour/{id}/permanent [delete]
func (h *LabourController) DeleteLabourer(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"), "Labourer not found")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if err := h.Labours.Delete(ctx, id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{Success: true, Message: "Labourer permanently deleted successfully"})
}
