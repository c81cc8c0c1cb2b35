package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dipperr/foodflow/internal/application/auth"
	"github.com/dipperr/foodflow/internal/application/compras"
	"github.com/dipperr/foodflow/internal/application/ledger"
	"github.com/dipperr/foodflow/internal/application/painel"
	"github.com/dipperr/foodflow/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	FornecedorUC *usecase.FornecedorUseCase
	Registrar    *ledger.RegistrarMovimentacaoUseCase
	Atualizar    *ledger.AtualizarMovimentacaoUseCase
	Listar       *ledger.ListarMovimentacoesUseCase
	PainelUC     *painel.PainelUseCase
	ComprasUC    *compras.ListaComprasUseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)

	// Categorias
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Fornecedores
	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	// Diário de movimentações
	movimentacoes := protected.Group("/movimentacoes")
	movimentacaoHandler := NewMovimentacaoHandler(deps.Registrar, deps.Atualizar, deps.Listar)
	movimentacoes.Post("/", movimentacaoHandler.Register)
	movimentacoes.Get("/", movimentacaoHandler.List)
	movimentacoes.Put("/:id", movimentacaoHandler.Update)

	// Painel financeiro
	painelHandler := NewPainelHandler(deps.PainelUC)
	protected.Get("/painel", painelHandler.Get)

	// Listas de compras
	listas := protected.Group("/compras/listas")
	comprasHandler := NewComprasHandler(deps.ComprasUC)
	listas.Post("/", comprasHandler.Create)
	listas.Get("/", comprasHandler.List)
	listas.Get("/:id", comprasHandler.GetByID)
	listas.Delete("/:id", comprasHandler.Delete)
	listas.Post("/:id/itens", comprasHandler.AddItem)
	listas.Delete("/:id/itens/:id_produto", comprasHandler.RemoveItem)
	listas.Post("/:id/finalizar", comprasHandler.Finalize)
	listas.Get("/:id/pdf", comprasHandler.ExportPDF)
}
