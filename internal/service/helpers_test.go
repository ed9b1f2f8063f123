package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shgportal/internal/config"
	"shgportal/internal/domain"
	"shgportal/internal/location"
	"shgportal/internal/service"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret-key-for-unit-tests",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 168 * time.Hour,
		Issuer:             "shg-portal-test",
	}
}

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func seedTree(t *testing.T) *location.Tree {
	t.Helper()
	tree, err := location.EmbeddedSeed()
	require.NoError(t, err)
	return tree
}

func nicActor() service.Actor {
	return service.Actor{UserID: uuid.New(), Email: "nic@shg.in", Role: domain.RoleNIC}
}

func dmmuActor(district string) service.Actor {
	return service.Actor{
		UserID: uuid.New(),
		Email:  "dmmu@shg.in",
		Role:   domain.RoleDMMU,
		Scope:  domain.Jurisdiction{District: district},
	}
}

func bmmuActor(district, block string) service.Actor {
	return service.Actor{
		UserID: uuid.New(),
		Email:  "bmmu@shg.in",
		Role:   domain.RoleBMMU,
		Scope:  domain.Jurisdiction{District: district, Block: block},
	}
}
