package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Estoque-api/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testSessionID = "11111111-1111-1111-1111-111111111111"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "estoque-api-test"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testUserID, "operador", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sessionID, userID, role, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSessionID, sessionID)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "operador", role)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testUserID, "administrador", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testUserID, "administrador", testIssuer, 60)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecretOSesion(t *testing.T) {
	_, err := pkgjwt.Generate("", testSessionID, testUserID, "operador", testIssuer, 60)
	assert.Error(t, err)

	_, err = pkgjwt.Generate(testSecret, "", testUserID, "operador", testIssuer, 60)
	assert.Error(t, err)
}
