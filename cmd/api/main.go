package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dipperr/foodflow/internal/application/auth"
	appcompras "github.com/dipperr/foodflow/internal/application/compras"
	"github.com/dipperr/foodflow/internal/application/ledger"
	apppainel "github.com/dipperr/foodflow/internal/application/painel"
	"github.com/dipperr/foodflow/internal/application/usecase"
	infrapdf "github.com/dipperr/foodflow/internal/infrastructure/pdf"
	"github.com/dipperr/foodflow/internal/infrastructure/postgres"
	httpRouter "github.com/dipperr/foodflow/internal/interfaces/http"
	"github.com/dipperr/foodflow/pkg/config"
	"github.com/dipperr/foodflow/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)
	movRepo := postgres.NewMovimentacaoRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	listaRepo := postgres.NewListaComprasRepository(pool)
	painelRepo := postgres.NewPainelRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	zl := log.Zerolog()
	registrarUC := ledger.NewRegistrarMovimentacaoUseCase(txRunner, produtoRepo, movRepo, cfg.App.TZOffset, zl)
	atualizarUC := ledger.NewAtualizarMovimentacaoUseCase(movRepo, produtoRepo, cfg.App.TZOffset, zl)
	listarUC := ledger.NewListarMovimentacoesUseCase(movRepo, produtoRepo, cfg.App.TZOffset)

	produtoUC := usecase.NewProdutoUseCase(txRunner, produtoRepo, cfg.App.TZOffset, zl)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	painelUC := apppainel.NewPainelUseCase(painelRepo)

	pdfGenerator := infrapdf.NewMarotoListaCompras()
	comprasUC := appcompras.NewListaComprasUseCase(
		listaRepo, produtoRepo, registrarUC, pdfGenerator, cfg.App.TZOffset, zl,
	)

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FoodFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProdutoUC:    produtoUC,
		CategoriaUC:  categoriaUC,
		FornecedorUC: fornecedorUC,
		Registrar:    registrarUC,
		Atualizar:    atualizarUC,
		Listar:       listarUC,
		PainelUC:     painelUC,
		ComprasUC:    comprasUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
