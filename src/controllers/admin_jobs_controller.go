package controllers

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ReconcileLabourer godoc
// @Summary      Recount present days of one labourer
// @Description  Queue a recount of totalPresentDays from assignment records. Without Redis the recount runs in-process and returns the new value.
// @Tags         labour
// @Produce      json
// @Param        id   path      string  true  "Labour ID"
// @Success      200  {object}  models.APIResponse
// @Success      202  {object}  models.APIResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /labour/{id}/reconcile [post]
func (h *LabourController) ReconcileLabourer(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := utils.ParseObjectID(id, "Labourer not found"); err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if h.Jobs != nil && h.Jobs.Available() {
		taskID, err := h.Jobs.EnqueueReconcile(ctx, id)
		if err != nil {
			return utils.HandleServiceError(c, utils.Persistence("Failed to enqueue recount", err))
		}
		return c.Status(fiber.StatusAccepted).JSON(models.APIResponse{
			Success: true,
			Message: "Recount enqueued",
			Data:    fiber.Map{"taskId": taskID},
		})
	}

	// ไม่มี Redis: รันทันทีใน process
	count, err := h.Ledger.RecountPresentDays(ctx, id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Present days recounted",
		Data:    fiber.Map{"labourId": id, "totalPresentDays": count},
	})
}

// ReconcileAllLabourers godoc
// @Summary      Recount present days of every active labourer
// @Tags         labour
// @Produce      json
// @Success      200  {object}  models.APIResponse
// @Success      202  {object}  models.APIResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /labour/reconcile [post]
func (h *LabourController) ReconcileAllLabourers(c *fiber.Ctx) error {
	if h.Jobs != nil && h.Jobs.Available() {
		ctx, cancel := requestContext(c, h.Timeout)
		defer cancel()

		taskID, err := h.Jobs.EnqueueReconcile(ctx, "")
		if err != nil {
			return utils.HandleServiceError(c, utils.Persistence("Failed to enqueue recount", err))
		}
		return c.Status(fiber.StatusAccepted).JSON(models.APIResponse{
			Success: true,
			Message: "Recount enqueued",
			Data:    fiber.Map{"taskId": taskID},
		})
	}

	// recount ทั้งหมดอาจนานกว่า request timeout ปกติ
	ctx, cancel := requestContext(c, 10*h.timeout())
	defer cancel()

	updated, err := h.Ledger.RecountAll(ctx)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Present days recounted",
		Count:   &updated,
	})
}

func (h *LabourController) timeout() time.Duration {
	if h.Timeout <= 0 {
		return defaultRequestTimeout
	}
	return h.Timeout
}
