package service_test

import (
	"context"
	"testing"

	"livrocaixa/internal/config"
	"livrocaixa/internal/dto"
	"livrocaixa/internal/model"
	"livrocaixa/internal/repository"
	"livrocaixa/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUsuarioRepo struct {
	usuarios []model.Usuario
}

func (r *fakeUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

var _ repository.UsuarioRepository = (*fakeUsuarioRepo)(nil)

func authFixture(t *testing.T, activo bool) (service.AuthService, *model.Usuario) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segredo123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := model.Usuario{
		ID:           uuid.New(),
		Email:        "admin@livrocaixa.local",
		Nome:         "Admin",
		PasswordHash: string(hash),
		Activo:       activo,
	}
	repo := &fakeUsuarioRepo{usuarios: []model.Usuario{admin}}
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
		JWTRefreshHours:    72,
	}
	return service.NewAuthService(repo, cfg), &admin
}

func TestLogin(t *testing.T) {
	svc, admin := authFixture(t, true)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    admin.Email,
		Password: "segredo123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 24*3600, resp.ExpiresIn)
	assert.Equal(t, admin.Email, resp.User.Email)
}

func TestLoginPasswordErrada(t *testing.T) {
	svc, admin := authFixture(t, true)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    admin.Email,
		Password: "errada",
	})
	require.Error(t, err)
	assert.Equal(t, "credenciais inválidas", err.Error())
}

func TestLoginEmailDesconhecido(t *testing.T) {
	svc, _ := authFixture(t, true)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ninguem@livrocaixa.local",
		Password: "segredo123",
	})
	require.Error(t, err)
	// Same message as a bad password, so login probes learn nothing.
	assert.Equal(t, "credenciais inválidas", err.Error())
}

func TestLoginUsuarioInactivo(t *testing.T) {
	svc, admin := authFixture(t, false)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    admin.Email,
		Password: "segredo123",
	})
	require.Error(t, err)
	assert.Equal(t, "credenciais inválidas", err.Error())
}

func TestRefresh(t *testing.T) {
	svc, admin := authFixture(t, true)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    admin.Email,
		Password: "segredo123",
	})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)
	assert.Equal(t, admin.Email, renovado.User.Email)
}

func TestRefreshTokenInvalido(t *testing.T) {
	svc, _ := authFixture(t, true)

	_, err := svc.Refresh(context.Background(), "nao-e-um-jwt")
	require.Error(t, err)
}

func TestRefreshComOutroSegredo(t *testing.T) {
	svcA, admin := authFixture(t, true)
	login, err := svcA.Login(context.Background(), dto.LoginRequest{
		Email:    admin.Email,
		Password: "segredo123",
	})
	require.NoError(t, err)

	repo := &fakeUsuarioRepo{usuarios: []model.Usuario{*admin}}
	svcB := service.NewAuthService(repo, &config.Config{
		JWTSecret:          "outro-segredo",
		JWTExpirationHours: 24,
		JWTRefreshHours:    72,
	})

	_, err = svcB.Refresh(context.Background(), login.RefreshToken)
	require.Error(t, err)
}
