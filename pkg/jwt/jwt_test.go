package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/storemax-web/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-unit-tests"
	testSessionID = "9b2f6a64-0d5e-4c57-9a55-2b1c1f1d0a01"
	testIssuer    = "storemax-web-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testIssuer)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	sid, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testSessionID, sid)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testIssuer)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar la cookie")
}

func TestJWT_TokenManipulado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testSessionID, testIssuer)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok+"x")
	assert.Error(t, err)
}

func TestJWT_SinSessionID(t *testing.T) {
	_, err := pkgjwt.Generate(testSecret, "", testIssuer)
	assert.Error(t, err)

	_, err = pkgjwt.Generate("", testSessionID, testIssuer)
	assert.Error(t, err)
}
