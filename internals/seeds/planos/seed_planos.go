package planos

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"academia_backend/internals/features/gym/dto"
	"academia_backend/internals/features/gym/repository"
	helper "academia_backend/internals/helpers"
)

//go:embed data_planos.json
var defaultPlanos []byte

// SeedPlanosFromJSON inserts every plano from data whose nome is not taken
// yet and returns how many were created. nil data uses the bundled list.
func SeedPlanosFromJSON(ctx context.Context, db *gorm.DB, data []byte) (int, error) {
	if data == nil {
		data = defaultPlanos
	}

	var inputs []dto.CreatePlanoRequest
	if err := sonic.Unmarshal(data, &inputs); err != nil {
		return 0, fmt.Errorf("decode planos seed: %w", err)
	}

	repo := repository.NewPlanoRepository(db)
	created := 0
	for i := range inputs {
		in := &inputs[i]
		in.Normalize()
		if err := helper.ValidateStruct(in); err != nil {
			return created, fmt.Errorf("plano seed #%d: %w", i, err)
		}

		_, err := repo.FindByNome(ctx, in.Nome)
		if err == nil {
			slog.Info("plano already exists, skipped", "nome", in.Nome)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		m := in.ToModel()
		if err := repo.Create(ctx, &m); err != nil {
			return created, fmt.Errorf("insert plano %q: %w", in.Nome, err)
		}
		created++
	}

	slog.Info("planos seeded", "created", created, "total", len(inputs))
	return created, nil
}
