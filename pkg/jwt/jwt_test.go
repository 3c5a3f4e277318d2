package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/seasafety-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "op-7", "Marinheiro Silva", "operador", "seasafety-test", 60)
	require.NoError(t, err)

	id, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, "op-7", id.Subject)
	assert.Equal(t, "Marinheiro Silva", id.Actor())
	assert.Equal(t, "operador", id.Role)
}

func TestIdentity_ActorSinNombreUsaSubject(t *testing.T) {
	assert.Equal(t, "op-7", pkgjwt.Identity{Subject: "op-7"}.Actor())
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "op-7", "", "", "seasafety-test", -1)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "op-7", "", "", "seasafety-test", 60)
	require.NoError(t, err)
	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_SinSubject(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, "", "Anônimo", "", "seasafety-test", 60)
	require.NoError(t, err)
	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "op", "", "", "", 60)
	assert.Error(t, err)
}
