// Seed de desenvolvimento: cria uma empresa e seu usuário administrador.
//
// Uso:
//
//	go run ./cmd/seed -empresa "Restaurante Demo" -nome "Admin" -telefone "5599999999999" -senha "trocar123"
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"

	"github.com/dipperr/foodflow/internal/application/auth"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/infrastructure/postgres"
	"github.com/dipperr/foodflow/pkg/config"
	"github.com/dipperr/foodflow/pkg/logger"
)

func main() {
	empresaNome := flag.String("empresa", "Restaurante Demo", "nome da empresa")
	nome := flag.String("nome", "Admin", "nome do usuário")
	telefone := flag.String("telefone", "", "telefone de login")
	senha := flag.String("senha", "", "senha do usuário")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if *telefone == "" || *senha == "" {
		log.Fatal().Msg("informe -telefone e -senha")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)

	empresa := &entity.Empresa{
		ID:       uuid.New().String(),
		Nome:     *empresaNome,
		CriadoEm: time.Now(),
	}
	if err := empresaRepo.Criar(ctx, empresa); err != nil {
		log.Fatal().Err(err).Msg("criar empresa")
	}

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{})
	usuario, err := authUC.CriarUsuario(ctx, empresa.ID, *nome, *telefone, *senha)
	if err != nil {
		log.Fatal().Err(err).Msg("criar usuário")
	}

	log.Info().
		Str("empresa_id", empresa.ID).
		Str("usuario_id", usuario.ID).
		Str("telefone", usuario.Telefone).
		Msg("seed concluído")
}
