package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
	"github.com/hostaly/hostaly-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, orgRepo: orgRepo, jwtCfg: jwtCfg}
}

// RegisterOrganization da de alta una organización nueva junto con su primer
// usuario administrador y devuelve un token de sesión. Es el punto de
// arranque de un tenant: sin esto ningún registro de usuario es posible.
func (uc *AuthUseCase) RegisterOrganization(in dto.RegisterOrganizationRequest) (*dto.RegisterOrganizationResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	org := &entity.Organization{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
	}
	if err := uc.orgRepo.Create(org); err != nil {
		return nil, err
	}
	admin, err := uc.RegisterUser(dto.RegisterRequest{
		OrganizationID: org.ID,
		Email:          in.Email,
		Password:       in.Password,
		Name:           in.UserName,
		Role:           entity.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, org.ID, admin.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RegisterOrganizationResponse{
		Organization: dto.OrganizationResponse{ID: org.ID, Name: org.Name, CreatedAt: org.CreatedAt},
		User:         *admin,
		Token:        token,
	}, nil
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// El email es único global (ver esquema), no solo por organización: el login
// resuelve por email sin ambigüedad entre tenants.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || in.OrganizationID == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	org, err := uc.orgRepo.GetByID(in.OrganizationID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	if role == "" {
		role = entity.RoleReception
	}
	user := &entity.User{
		ID:             uuid.New().String(),
		OrganizationID: in.OrganizationID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		Name:           name,
		Role:           role,
		Status:         "active",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrganizationID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		Status:         u.Status,
		CreatedAt:      u.CreatedAt,
	}
}
