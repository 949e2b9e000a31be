package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dadminete/dbsismovil/internal/config"
	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/model"
	"github.com/Dadminete/dbsismovil/internal/repository"
	"github.com/Dadminete/dbsismovil/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubUsuarioRepo is an in-memory UsuarioRepository for testing.
type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) add(u *model.Usuario) *model.Usuario {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.usuarios[u.ID] = u
	return u
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.add(u)
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindPrimerActivo(_ context.Context) (*model.Usuario, error) {
	var primero *model.Usuario
	for _, u := range r.usuarios {
		if !u.Activo {
			continue
		}
		if primero == nil || u.CreatedAt.Before(primero.CreatedAt) {
			primero = u
		}
	}
	if primero == nil {
		return nil, errors.New("not found")
	}
	return primero, nil
}

func (r *stubUsuarioRepo) IncrementarTokenVersion(_ context.Context, id uuid.UUID) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("not found")
	}
	next := u.VersionActual() + 1
	u.TokenVersion = &next
	return nil
}

func (r *stubUsuarioRepo) TokenVersion(_ context.Context, id uuid.UUID) (int, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return 0, errors.New("not found")
	}
	return u.VersionActual(), nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func testConfig() *config.Config {
	return &config.Config{SessionSecret: "test-secret", SessionDays: 7}
}

func hashDe(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLoginConHashBcrypt(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := repo.add(&model.Usuario{
		Username:     "admin",
		Nombre:       "Admin",
		PasswordHash: hashDe(t, "1234"),
		Activo:       true,
	})

	svc := service.NewAuthService(repo, testConfig())
	resp, token, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "1234"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, u.ID.String(), resp.User.ID)
	assert.NotEmpty(t, token)

	claims := parseClaims(t, token)
	assert.Equal(t, u.ID.String(), claims["user_id"])
	assert.Equal(t, float64(1), claims["token_version"])
}

func TestLoginLegacyPlaintext(t *testing.T) {
	repo := newStubUsuarioRepo()
	repo.add(&model.Usuario{
		Username:     "legacy",
		Nombre:       "Cuenta Vieja",
		PasswordHash: "secreto-plano",
		Activo:       true,
	})

	svc := service.NewAuthService(repo, testConfig())
	_, token, err := svc.Login(context.Background(), dto.LoginRequest{Username: "legacy", Password: "secreto-plano"})

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginHashNoAceptadoComoPassword(t *testing.T) {
	// A bcrypt-shaped stored value must never authenticate by raw equality.
	hash := hashDe(t, "1234")
	repo := newStubUsuarioRepo()
	repo.add(&model.Usuario{
		Username:     "admin",
		Nombre:       "Admin",
		PasswordHash: hash,
		Activo:       true,
	})

	svc := service.NewAuthService(repo, testConfig())
	_, _, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: hash})

	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestLoginPasswordIncorrecto(t *testing.T) {
	repo := newStubUsuarioRepo()
	repo.add(&model.Usuario{Username: "admin", Nombre: "Admin", PasswordHash: hashDe(t, "1234"), Activo: true})

	svc := service.NewAuthService(repo, testConfig())
	_, _, err := svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "mala"})

	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestLoginUsuarioInexistente(t *testing.T) {
	svc := service.NewAuthService(newStubUsuarioRepo(), testConfig())
	_, _, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "1234"})

	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestLoginUsuarioDesactivado(t *testing.T) {
	repo := newStubUsuarioRepo()
	repo.add(&model.Usuario{Username: "baja", Nombre: "Baja", PasswordHash: "1234", Activo: false})

	svc := service.NewAuthService(repo, testConfig())
	_, _, err := svc.Login(context.Background(), dto.LoginRequest{Username: "baja", Password: "1234"})

	assert.ErrorIs(t, err, service.ErrUsuarioDesactivado)
}

func TestBiometricPrimerActivo(t *testing.T) {
	repo := newStubUsuarioRepo()
	viejo := repo.add(&model.Usuario{
		Username: "primero", Nombre: "Primero", PasswordHash: "x", Activo: true,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	})
	repo.add(&model.Usuario{
		Username: "segundo", Nombre: "Segundo", PasswordHash: "x", Activo: true,
		CreatedAt: time.Now(),
	})
	repo.add(&model.Usuario{
		Username: "inactivo", Nombre: "Inactivo", PasswordHash: "x", Activo: false,
		CreatedAt: time.Now().Add(-96 * time.Hour),
	})

	svc := service.NewAuthService(repo, testConfig())
	resp, token, err := svc.Biometric(context.Background())

	require.NoError(t, err)
	assert.Equal(t, viejo.ID.String(), resp.User.ID)
	assert.NotEmpty(t, token)
}

func TestBiometricSinUsuarios(t *testing.T) {
	svc := service.NewAuthService(newStubUsuarioRepo(), testConfig())
	_, _, err := svc.Biometric(context.Background())

	assert.ErrorIs(t, err, service.ErrSinUsuarios)
}

func TestLogoutIncrementaVersion(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := repo.add(&model.Usuario{Username: "admin", Nombre: "Admin", PasswordHash: "x", Activo: true})

	svc := service.NewAuthService(repo, testConfig())

	require.NoError(t, svc.Logout(context.Background(), u.ID))
	v, err := repo.TokenVersion(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	// A second logout keeps counting up.
	require.NoError(t, svc.Logout(context.Background(), u.ID))
	v, err = repo.TokenVersion(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestLogoutVersionNulaCuentaComoUno(t *testing.T) {
	// Rows predating the column carry NULL — the first bump lands on 2.
	repo := newStubUsuarioRepo()
	u := repo.add(&model.Usuario{Username: "viejo", Nombre: "Viejo", PasswordHash: "x", Activo: true, TokenVersion: nil})

	svc := service.NewAuthService(repo, testConfig())
	require.NoError(t, svc.Logout(context.Background(), u.ID))

	v, err := repo.TokenVersion(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestSessionTTL(t *testing.T) {
	svc := service.NewAuthService(newStubUsuarioRepo(), testConfig())
	assert.Equal(t, 7*24*time.Hour, svc.SessionTTL())
}
