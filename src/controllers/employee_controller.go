package controllers

import (
	"KisaanPartner-Backend/src/models"
	"KisaanPartner-Backend/src/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// EmployeeController จัดการ API ของพนักงาน
type EmployeeController struct {
	Employees EmployeeService
	Timeout   time.Duration
}

// RegisterEmployee godoc
// @Summary Register employee
// @Tags employee
// @Accept json
// @Produce json
// @Param employee body models.RegisterEmployeeRequest true "Employee"
// @Success 201 {object} models.APIResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /employee [post]
func (h *EmployeeController) RegisterEmployee(c *fiber.Ctx) error {
	var req models.RegisterEmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	employee, err := h.Employees.Register(ctx, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.APIResponse{
		Success: true,
		Message: "Employee registered successfully",
		Data:    employee,
	})
}

// GetEmployees godoc
// @Summary List employees
// @Tags employee
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Limit" default(10)
// @Param search query string false "Search first/last name or employee ID"
// @Param isActive query bool false "Active filter"
// @Param department query string false "Department"
// @Param employmentType query string false "full-time / contract"
// @Param verificationStatus query string false "pending / verified / rejected"
// @Success 200 {object} models.PaginatedResponse
// @Router /employee [get]
func (h *EmployeeController) GetEmployees(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid query parameters")
	}
	params.Normalize()

	filter := models.EmployeeFilter{
		Department:         c.Query("department"),
		EmploymentType:     c.Query("employmentType"),
		VerificationStatus: c.Query("verificationStatus"),
	}
	if raw := c.Query("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.HandleError(c, fiber.StatusBadRequest, "isActive must be true or false")
		}
		filter.IsActive = &active
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	employees, total, err := h.Employees.List(ctx, params, filter)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.NewPaginatedResponse(employees, len(employees), total, params))
}

// GetEmployeeStats godoc
// @Summary Employee statistics
// @Tags employee
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /employee/stats [get]
func (h *EmployeeController) GetEmployeeStats(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	stats, err := h.Employees.Stats(ctx)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{Success: true, Data: stats})
}

// GetEmployeeByEmployeeID godoc
// @Summary Get employee by employee ID
// @Tags employee
// @Produce json
// @Param employeeId path string true "Employee ID (e.g. EMP001)"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employee/by-employee-id/{employeeId} [get]
func (h *EmployeeController) GetEmployeeByEmployeeID(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	employee, err := h.Employees.FindByEmployeeID(ctx, c.Params("employeeId"))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{Success: true, Data: employee})
}

// GetEmployeeByID godoc
// @Summary Get employee
// @Tags employee
// @Produce json
// @Param id path string true "Employee _id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employee/{id} [get]
func (h *EmployeeController) GetEmployeeByID(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"), "Employee not found")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	employee, err := h.Employees.FindByID(ctx, id)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{Success: true, Data: employee})
}

// UpdateEmployee godoc
// @Summary Update employee
// @Tags employee
// @Accept json
// @Produce json
// @Param id path string true "Employee _id"
// @Param employee body models.UpdateEmployeeRequest true "Changed groups"
// @Success 200 {object} models.APIResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employee/{id} [put]
func (h *EmployeeController) UpdateEmployee(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"), "Employee not found")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	var req models.UpdateEmployeeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	employee, err := h.Employees.Update(ctx, id, req)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{
		Success: true,
		Message: "Employee updated successfully",
		Data:    employee,
	})
}

// DeactivateEmployee godoc
// @Summary Deactivate employee
// @Tags employee
// @Param id path string true "Employee _id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employee/{id} [delete]
func (h *EmployeeController) DeactivateEmployee(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"), "Employee not found")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if err := h.Employees.Deactivate(ctx, id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{Success: true, Message: "Employee deactivated successfully"})
}

// DeleteEmployee godoc
// @Summary Permanently delete employee
// @Tags employee
// @Param id path string true "Employee _id"
// @Success 200 {object} models.APIResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /employee/{id}/permanent [delete]
func (h *EmployeeController) DeleteEmployee(c *fiber.Ctx) error {
	id, err := utils.ParseObjectID(c.Params("id"), "Employee not found")
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	ctx, cancel := requestContext(c, h.Timeout)
	defer cancel()

	if err := h.Employees.Delete(ctx, id); err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(models.APIResponse{Success: true, Message: "Employee permanently deleted successfully"})
}
