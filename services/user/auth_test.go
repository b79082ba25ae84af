package user

import (
	"testing"

	"careconnect/models"
	"careconnect/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memUserRepo struct {
	users map[string]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]models.User)}
}

func (r *memUserRepo) Create(u *models.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *memUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) UpdateSetDocument(id string, doc bson.M) error {
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	if v, ok := doc["tokenHash"].(string); ok {
		u.TokenHash = v
	}
	r.users[id] = u
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func validRegistration() RegisterRequest {
	return RegisterRequest{
		Name:     "Amina Odhiambo",
		Email:    "amina@example.com",
		Password: "long-enough-password",
		Role:     models.RoleProvider,
	}
}

func TestRegisterUser(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.RegisterUser(validRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleProvider, resp.Role)

	stored, err := repo.GetByID(resp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "long-enough-password", stored.PasswordHash, "password must be stored hashed")
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
}

func TestRegisterUserValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"missing name", func(r *RegisterRequest) { r.Name = "" }},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }},
		{"admin self-registration", func(r *RegisterRequest) { r.Role = models.RoleAdmin }},
		{"unknown role", func(r *RegisterRequest) { r.Role = "janitor" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegistration()
			tc.mutate(&req)
			_, err := svc.RegisterUser(req)
			assert.Error(t, err)
		})
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.RegisterUser(validRegistration())
	require.NoError(t, err)

	_, err = svc.RegisterUser(validRegistration())
	assert.EqualError(t, err, "a user with this email already exists")
}

func TestAuthenticateUser(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	reg, err := svc.RegisterUser(validRegistration())
	require.NoError(t, err)

	resp, err := svc.AuthenticateUser("amina@example.com", "long-enough-password")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, resp.ID)

	stored, err := repo.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
}

func TestAuthenticateUserBadCredentials(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemUserRepo()}

	_, err := svc.RegisterUser(validRegistration())
	require.NoError(t, err)

	_, err = svc.AuthenticateUser("amina@example.com", "wrong-password")
	assert.EqualError(t, err, "invalid email or password")

	_, err = svc.AuthenticateUser("nobody@example.com", "long-enough-password")
	assert.EqualError(t, err, "invalid email or password")
}

func TestRevokeAuthToken(t *testing.T) {
	repo := newMemUserRepo()
	svc := &DefaultUserService{Repo: repo}

	reg, err := svc.RegisterUser(validRegistration())
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAuthToken(reg.ID))

	stored, err := repo.GetByID(reg.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.TokenHash)
}
