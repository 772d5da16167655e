package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gymRoutes "academia_backend/internals/features/gym/route"
)

// GymRoutes mounts the back office API at the root (/alunos, /planos, ...).
func GymRoutes(app fiber.Router, db *gorm.DB) {
	gymRoutes.GymRoutes(app, db)
}
