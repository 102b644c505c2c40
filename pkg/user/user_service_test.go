package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/freshalert/freshalert-backend/domain"
	"github.com/freshalert/freshalert-backend/entities"
	"github.com/freshalert/freshalert-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func newTestService(db *gorm.DB) UserService {
	return NewUserService(NewUserRepository(db), jwt.NewJWTService())
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "jamie@example.com", registered.Email)

	// Passwords are stored hashed, never verbatim.
	var stored entities.User
	require.NoError(t, db.Where("email = ?", "jamie@example.com").First(&stored).Error)
	assert.NotEqual(t, "hunter22", stored.Password)

	login, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "jamie@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, registered.ID, login.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Other Jamie",
		Email:    "jamie@example.com",
		Password: "different",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyRegistered)
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "jamie@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	// Unknown email answers the same error as a bad password.
	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "nobody@example.com",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	db := setupTestDB(t)
	service := newTestService(db)

	registered, err := service.Register(context.Background(), domain.RegisterRequest{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	me, err := service.Me(context.Background(), registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jamie", me.Name)
}
