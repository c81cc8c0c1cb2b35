// Package auth autenticação por telefone + senha, com emissão de JWT.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dipperr/foodflow/internal/application/dto"
	"github.com/dipperr/foodflow/internal/domain"
	"github.com/dipperr/foodflow/internal/domain/entity"
	"github.com/dipperr/foodflow/internal/domain/repository"
	"github.com/dipperr/foodflow/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro e login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	empresaRepo repository.EmpresaRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(
	usuarioRepo repository.UsuarioRepository,
	empresaRepo repository.EmpresaRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, empresaRepo: empresaRepo, jwtCfg: jwtCfg}
}

// Login verifica telefone/senha e devolve o token com usuário e empresa nos
// claims. Telefone desconhecido e senha errada respondem o mesmo erro.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.BuscarPorTelefone(ctx, in.Telefone)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) || errors.Is(err, domain.ErrUsuarioNaoEncontrado) {
			return nil, domain.ErrNaoAutorizado
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.EmpresaID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		UsuarioID: usuario.ID,
		EmpresaID: usuario.EmpresaID,
		Nome:      usuario.Nome,
	}, nil
}

// CriarUsuario cadastra um usuário numa empresa existente, com a senha
// hasheada por bcrypt.
func (uc *AuthUseCase) CriarUsuario(
	ctx context.Context, empresaID, nome, telefone, senha string,
) (*entity.Usuario, error) {
	if telefone == "" || senha == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if _, err := uc.empresaRepo.BuscarPorID(ctx, empresaID); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      nome,
		Telefone:  telefone,
		SenhaHash: string(hash),
		CriadoEm:  time.Now(),
	}
	if err := uc.usuarioRepo.Criar(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}
