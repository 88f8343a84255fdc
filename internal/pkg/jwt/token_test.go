package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/identity/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "staffloop-test",
		},
	}
}

func testUser() *models.User {
	return &models.User{
		ID:          uuid.New().String(),
		RoleID:      uuid.New().String(),
		InstituteID: uuid.New().String(),
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := getTestConfig()
	user := testUser()

	tokenString, expiresAt, err := GenerateToken(user, cfg)

	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, (*claims)["user_id"])
	assert.Equal(t, user.RoleID, (*claims)["role_id"])
	assert.Equal(t, user.InstituteID, (*claims)["institute_id"])
	assert.Equal(t, cfg.JWT.Issuer, (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken(testUser(), cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, "a-different-secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()

	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-1 * time.Hour).Unix(),
		"iss":     cfg.JWT.Issuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	parsed, err := ValidateToken(tokenString, cfg.JWT.Secret)
	assert.Error(t, err)
	assert.Nil(t, parsed)
}

func TestValidateToken_Malformed(t *testing.T) {
	claims, err := ValidateToken("not-a-token", "secret")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
