package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Dadminete/dbsismovil/internal/config"
	"github.com/Dadminete/dbsismovil/internal/dto"
	"github.com/Dadminete/dbsismovil/internal/model"
	"github.com/Dadminete/dbsismovil/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrCredencialesInvalidas = errors.New("Credenciales inválidas")
	ErrUsuarioDesactivado    = errors.New("Usuario desactivado")
	ErrSinUsuarios           = errors.New("No hay usuarios disponibles")
)

type AuthService interface {
	// Login verifies credentials and returns the response body plus the
	// signed session token to set as the cookie value.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error)
	// Biometric logs in the first active user found. Placeholder: there is no
	// per-user credential binding.
	Biometric(ctx context.Context) (*dto.LoginResponse, string, error)
	// Logout bumps the user's token version, killing every outstanding
	// session cookie at once.
	Logout(ctx context.Context, userID uuid.UUID) error
	SessionTTL() time.Duration
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, string, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, "", ErrCredencialesInvalidas
	}
	if !user.Activo {
		return nil, "", ErrUsuarioDesactivado
	}
	if !verificarPassword(user.PasswordHash, req.Password) {
		return nil, "", ErrCredencialesInvalidas
	}
	return s.emitirSesion(user)
}

func (s *authService) Biometric(ctx context.Context) (*dto.LoginResponse, string, error) {
	user, err := s.repo.FindPrimerActivo(ctx)
	if err != nil {
		return nil, "", ErrSinUsuarios
	}
	return s.emitirSesion(user)
}

func (s *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	return s.repo.IncrementarTokenVersion(ctx, userID)
}

func (s *authService) SessionTTL() time.Duration {
	return time.Duration(s.cfg.SessionDays) * 24 * time.Hour
}

// verificarPassword accepts bcrypt hashes and, for accounts created before
// hashing existed, falls back to raw equality against the stored plaintext.
// A bcrypt-shaped stored value never authenticates by raw equality.
func verificarPassword(stored, password string) bool {
	if esHashBcrypt(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored == password
}

func esHashBcrypt(v string) bool {
	return strings.HasPrefix(v, "$2a$") ||
		strings.HasPrefix(v, "$2b$") ||
		strings.HasPrefix(v, "$2y$")
}

func (s *authService) emitirSesion(user *model.Usuario) (*dto.LoginResponse, string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":       user.ID.String(),
		"nombre":        user.Nombre,
		"email":         user.Email,
		"token_version": user.VersionActual(),
		"login_at":      now.Format(time.RFC3339),
		"exp":           now.Add(s.SessionTTL()).Unix(),
		"iat":           now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return nil, "", err
	}

	return &dto.LoginResponse{
		Success: true,
		User: dto.SessionUser{
			ID:     user.ID.String(),
			Nombre: user.Nombre,
			Email:  user.Email,
		},
	}, signed, nil
}
