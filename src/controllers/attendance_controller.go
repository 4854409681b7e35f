package controllers

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/services/attendance"
	"KisaanPartner-Backend/src/services/exports"
	"KisaanPartner-Backend/src/utils"
	"fmt"
	"regexp"

	"github.com/gofiber/fiber/v2"
)

// AssignLabour godoc
// @Summary Assign labourer to farmer
// @Tags labour
// @Accept json
// @Produce json
// @Param labourId path string true "Labour ID"
// @Param body body models.AssignLabourRequest true "Assignment"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /labour/{labourId}/assign [post]
func (h *LabourController) AssignLabour(c *fiber.Ctx) error {
	var req models.AssignLabourRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	assignmentDate, err := utils.ParseOptionalDate(req.AssignmentDate, h.Ledger.Location())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	assignment, err := h.Ledger.CreateAssignment(ctx, attendance.AssignmentInput{
		LabourID:       c.Params("labourId"),
		FarmerID:       req.FarmerID,
		AssignmentDate: assignmentDate,
		Notes:          req.Notes,
	})
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "Labourer assigned successfully",
		Data: models.AssignLabourResponse{
			AssignmentID:   assignment.ID,
			LabourID:       assignment.LabourID,
			FarmerID:       assignment.FarmerID,
			AssignmentDate: assignment.AssignmentDate,
			Status:         assignment.Status,
		},
	})
}

// ConfirmAttendance godoc
// @Summary Confirm attendance
// @Description Mark an assignment present or absent. The labourer's totalPresentDays follows the change.
// @Tags labour
// @Accept json
// @Produce json
// @Param assignmentId path string true "Assignment ID"
// @Param body body models.ConfirmAttendanceRequest true "Attendance"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /labour/attendance/{assignmentId} [post]
func (h *LabourController) ConfirmAttendance(c *fiber.Ctx) error {
	var req models.ConfirmAttendanceRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	date, err := utils.ParseOptionalDate(req.Date, h.Ledger.Location())
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	assignment, err := h.Ledger.SetAttendance(ctx, c.Params("assignmentId"), attendance.AttendanceInput{
		Status: req.Status,
		Date:   date,
		Time:   req.Time,
		Notes:  req.Notes,
	})
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Attendance marked as " + assignment.AttendanceStatus(),
		Data:    assignment,
	})
}

// GetAssignment godoc
// @Summary Get assignment
// @Tags labour
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /labour/attendance/{id} [get]
func (h *LabourController) GetAssignment(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	assignment, err := h.Ledger.GetAssignment(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{Success: true, Data: assignment})
}

// GetFarmerAssignments godoc
// @Summary List a farmer's assignments
// @Tags labour
// @Produce json
// @Param farmerId path string true "Farmer ID"
// @Success 200 {object} models.APIResponse
// @Router /labour/farmer/{farmerId}/assignments [get]
func (h *LabourController) GetFarmerAssignments(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	assignments, err := h.Ledger.ListAssignmentsByFarmer(ctx, c.Params("farmerId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.NewListResponse(assignments, len(assignments)))
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// ExportFarmerAssignments godoc
// @Summary Export a farmer's assignments as Excel
// @Tags labour
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param farmerId path string true "Farmer ID"
// @Success 200 {file} file
// @Failure 500 {object} models.ErrorResponse
// @Router /labour/farmer/{farmerId}/assignments/export [get]
func (h *LabourController) ExportFarmerAssignments(c *fiber.Ctx) error {
	farmerID := c.Params("farmerId")

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	assignments, err := h.Ledger.ListAssignmentsByFarmer(ctx, farmerID)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	buf, err := exports.FarmerAssignmentsWorkbook(farmerID, assignments, h.Ledger.Location())
	if err != nil {
		return utils.HandleServiceError(c, utils.Persistence("Failed to build export", err))
	}

	filename := fmt.Sprintf("assignments-%s.xlsx", unsafeFileChars.ReplaceAllString(farmerID, "_"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}
