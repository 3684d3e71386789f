package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostaly/hostaly-api/internal/application/auth"
	"github.com/hostaly/hostaly-api/internal/application/dto"
	"github.com/hostaly/hostaly-api/internal/domain"
	"github.com/hostaly/hostaly-api/internal/domain/entity"
	"github.com/hostaly/hostaly-api/internal/domain/repository"
	pkgjwt "github.com/hostaly/hostaly-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

type fakeUserRepo struct {
	users map[string]*entity.User // por email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.users[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	f.users[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

type fakeOrgRepo struct {
	orgs map[string]*entity.Organization
}

func newFakeOrgRepo() *fakeOrgRepo {
	return &fakeOrgRepo{orgs: map[string]*entity.Organization{}}
}

func (f *fakeOrgRepo) Create(org *entity.Organization) error {
	cp := *org
	f.orgs[org.ID] = &cp
	return nil
}

func (f *fakeOrgRepo) GetByID(id string) (*entity.Organization, error) {
	org, ok := f.orgs[id]
	if !ok {
		return nil, nil
	}
	cp := *org
	return &cp, nil
}

var _ repository.OrganizationRepository = (*fakeOrgRepo)(nil)

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo, *fakeOrgRepo) {
	userRepo := newFakeUserRepo()
	orgRepo := newFakeOrgRepo()
	uc := auth.NewAuthUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "hostaly-test",
	})
	return uc, userRepo, orgRepo
}

func TestRegisterOrganization_CreaTenantConAdminInicial(t *testing.T) {
	uc, _, orgRepo := newAuthFixture()

	resp, err := uc.RegisterOrganization(dto.RegisterOrganizationRequest{
		Name:     "Hotel Miramar",
		Email:    "gerencia@miramar.example",
		Password: "secreta123",
		UserName: "Gerencia",
	})
	require.NoError(t, err)

	assert.Equal(t, "Hotel Miramar", resp.Organization.Name)
	require.NotEmpty(t, resp.Organization.ID)
	org, err := orgRepo.GetByID(resp.Organization.ID)
	require.NoError(t, err)
	require.NotNil(t, org)

	// El primer usuario queda como admin de la organización nueva.
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
	assert.Equal(t, resp.Organization.ID, resp.User.OrganizationID)

	// El token devuelto ya es usable contra la API.
	userID, orgID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, resp.Organization.ID, orgID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestRegisterOrganization_Validaciones(t *testing.T) {
	uc, _, _ := newAuthFixture()

	for _, in := range []dto.RegisterOrganizationRequest{
		{Email: "a@b.example", Password: "x"},
		{Name: "Hotel", Password: "x"},
		{Name: "Hotel", Email: "a@b.example"},
	} {
		_, err := uc.RegisterOrganization(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegisterUser_SinOrganizacionEsNotFound(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.RegisterUser(dto.RegisterRequest{
		OrganizationID: "11111111-1111-1111-1111-111111111111",
		Email:          "recepcion@miramar.example",
		Password:       "secreta123",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterUser_DespuesDelAltaDeOrganizacion(t *testing.T) {
	uc, _, _ := newAuthFixture()

	boot, err := uc.RegisterOrganization(dto.RegisterOrganizationRequest{
		Name:     "Hotel Miramar",
		Email:    "gerencia@miramar.example",
		Password: "secreta123",
	})
	require.NoError(t, err)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		OrganizationID: boot.Organization.ID,
		Email:          "recepcion@miramar.example",
		Password:       "otra-clave",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleReception, user.Role, "rol por defecto: recepción")
	assert.Equal(t, boot.Organization.ID, user.OrganizationID)
}

func TestRegisterUser_EmailDuplicadoEntreOrganizaciones(t *testing.T) {
	uc, _, _ := newAuthFixture()

	first, err := uc.RegisterOrganization(dto.RegisterOrganizationRequest{
		Name: "Hotel Miramar", Email: "gerencia@miramar.example", Password: "secreta123",
	})
	require.NoError(t, err)
	second, err := uc.RegisterOrganization(dto.RegisterOrganizationRequest{
		Name: "Hostal Sol", Email: "admin@sol.example", Password: "secreta123",
	})
	require.NoError(t, err)
	require.NotEqual(t, first.Organization.ID, second.Organization.ID)

	// El email es único global: registrarlo en otra organización falla, así
	// el login por email nunca es ambiguo entre tenants.
	_, err = uc.RegisterUser(dto.RegisterRequest{
		OrganizationID: second.Organization.ID,
		Email:          "gerencia@miramar.example",
		Password:       "da-igual",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	_, err = uc.RegisterOrganization(dto.RegisterOrganizationRequest{
		Name: "Otro Hotel", Email: "gerencia@miramar.example", Password: "da-igual",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc, _, _ := newAuthFixture()

	boot, err := uc.RegisterOrganization(dto.RegisterOrganizationRequest{
		Name: "Hotel Miramar", Email: "gerencia@miramar.example", Password: "secreta123",
	})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "gerencia@miramar.example", Password: "secreta123"})
	require.NoError(t, err)
	assert.Equal(t, boot.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)

	_, err = uc.Login(dto.LoginRequest{Email: "gerencia@miramar.example", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@miramar.example", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
