package services

import (
	"testing"

	"techwritehub/app/models"
	"techwritehub/app/repo"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Tutorial{}, &models.Glossary{}))
	return gdb
}

// newServices wires all three services onto one database. bcrypt.MinCost keeps
// the hashing fast in tests; the policy itself is still exercised.
func newServices(t *testing.T) (*UserService, *TutorialService, *GlossaryService) {
	t.Helper()
	gdb := newTestDB(t)
	users := NewUserService(repo.NewUserRepository(gdb), bcrypt.MinCost)
	tutorials := NewTutorialService(repo.NewTutorialRepository(gdb))
	glossary := NewGlossaryService(repo.NewGlossaryRepository(gdb))
	return users, tutorials, glossary
}

func registerUser(t *testing.T, users *UserService, username, email, password string) *models.User {
	t.Helper()
	u, err := users.Register(username, email, password)
	require.NoError(t, err)
	return u
}
