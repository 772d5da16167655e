package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/controller"
)

// GymRoutes mounts the back office endpoints on router.
func GymRoutes(router fiber.Router, db *gorm.DB) {
	alunoCtrl := controller.NewAlunoController(db)
	planoCtrl := controller.NewPlanoController(db)
	matriculaCtrl := controller.NewMatriculaController(db)
	pagamentoCtrl := controller.NewPagamentoController(db)
	dashboardCtrl := controller.NewDashboardController(db)

	// === /alunos
	alunos := router.Group("/alunos")
	alunos.Get("/", alunoCtrl.List)
	alunos.Get("/:id", alunoCtrl.Get)
	alunos.Post("/", alunoCtrl.Create)
	alunos.Put("/:id", alunoCtrl.Update)
	alunos.Delete("/:id", alunoCtrl.Delete)

	// === /planos
	planos := router.Group("/planos")
	planos.Get("/", planoCtrl.List)
	planos.Get("/:id", planoCtrl.Get)
	planos.Post("/", planoCtrl.Create)
	planos.Put("/:id", planoCtrl.Update)
	planos.Delete("/:id", planoCtrl.Delete)

	// === /matriculas (create only, matriculas are immutable)
	router.Post("/matriculas", matriculaCtrl.Create)

	// === /pagamentos
	pagamentos := router.Group("/pagamentos")
	pagamentos.Get("/", pagamentoCtrl.List)
	pagamentos.Patch("/:id/pagar", pagamentoCtrl.MarkPaid)

	router.Get("/dashboard/metrics", dashboardCtrl.Metrics)
}
