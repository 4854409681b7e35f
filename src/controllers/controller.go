package controllers

import (
	"KisaanPartner-Backend/src/models"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const defaultRequestTimeout = 5 * time.Second

// LabourService คือ method ของ labours.Service ที่ controller ใช้
type LabourService interface {
	Create(ctx context.Context, req models.CreateLabourRequest) (*models.Labour, error)
	List(ctx context.Context, filter models.LabourFilter) ([]models.Labour, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Labour, error)
	Villages(ctx context.Context) ([]string, error)
	Seed(ctx context.Context) ([]models.Labour, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EmployeeService คือ method ของ employees.Service ที่ controller ใช้
type EmployeeService interface {
	Register(ctx context.Context, req models.RegisterEmployeeRequest) (*models.Employee, error)
	List(ctx context.Context, params models.PaginationParams, filter models.EmployeeFilter) ([]models.Employee, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*models.Employee, error)
	Update(ctx context.Context, id primitive.ObjectID, req models.UpdateEmployeeRequest) (*models.Employee, error)
	Deactivate(ctx context.Context, id primitive.ObjectID) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Stats(ctx context.Context) (*models.EmployeeStats, error)
}

// ReconcileQueue is satisfied by jobs.Enqueuer.
type ReconcileQueue interface {
	Available() bool
	EnqueueReconcile(ctx context.Context, labourID string) (string, error)
}

func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return context.WithTimeout(c.UserContext(), timeout)
}

// parseBody อ่าน JSON body; body ว่างถือว่าเป็นค่า zero
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}
