package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	providerCtrl "pelatihanku_backend/internals/features/training/providers/controller"
	authMW "pelatihanku_backend/internals/middlewares/auth"
)

func ProviderRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := providerCtrl.NewProviderController(db)

	g := r.Group("/providers")
	g.Get("/", ctrl.List)
	g.Post("/", authMW.AuthMiddleware(), ctrl.Create)
	g.Get("/:slug/branches", ctrl.ListBranches)
	g.Get("/:slug/branches/:branch_id/employees", ctrl.ListEmployees)
	g.Post("/:slug/branches/:branch_id/employees", authMW.AuthMiddleware(), ctrl.CreateEmployee)
}
