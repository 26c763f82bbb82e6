package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JuanCami009/banco-sangre-api/internal/domain/access"
	apphttp "github.com/JuanCami009/banco-sangre-api/internal/interfaces/http"
	pkgjwt "github.com/JuanCami009/banco-sangre-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testRoleID    = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "banco-sangre-test"
	testExpMin    = 60
)

// stubResolver devuelve un conjunto de permisos fijo para cualquier rol.
type stubResolver struct {
	granted access.PermissionSet
	err     error
}

func (s stubResolver) PermissionSet(roleID string) (access.PermissionSet, error) {
	return s.granted, s.err
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermissions para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(resolver stubResolver, required ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermissions(resolver, required...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"role_id": apphttp.GetRoleID(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol indicado.
func tokenFor(t *testing.T, roleName string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, roleName, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermissions
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el rol tiene exactamente los permisos requeridos → HTTP 200.
func TestRequirePermissions_RolConPermisoExacto(t *testing.T) {
	resolver := stubResolver{granted: access.NewPermissionSet(access.PermBloodRead)}
	app := buildTestApp(resolver, access.PermBloodRead)
	resp := doRequest(t, app, tokenFor(t, "donor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un rol con el permiso requerido debe poder acceder")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, testRoleID, body["role_id"], "el role_id debe salir del token")
}

// Caso 1b: el conjunto concedido es superconjunto estricto del requerido → HTTP 200.
func TestRequirePermissions_SuperconjuntoPermite(t *testing.T) {
	resolver := stubResolver{granted: access.NewPermissionSet(
		access.PermRequestRead, access.PermRequestWrite, access.PermBagRead,
	)}
	app := buildTestApp(resolver, access.PermRequestRead, access.PermBagRead)
	resp := doRequest(t, app, tokenFor(t, "entity"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un superconjunto de los permisos requeridos debe permitir el acceso")
}

// Caso 1c: ruta sin permisos requeridos → cualquier identidad autenticada pasa.
func TestRequirePermissions_SinRequeridosPermiteAutenticados(t *testing.T) {
	resolver := stubResolver{granted: access.NewPermissionSet()}
	app := buildTestApp(resolver)
	resp := doRequest(t, app, tokenFor(t, "donor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"una ruta sin permisos requeridos debe permitir a cualquier autenticado")
}

// Caso 2: al rol le falta uno de los permisos requeridos → HTTP 403.
func TestRequirePermissions_PermisoFaltanteBloquea(t *testing.T) {
	resolver := stubResolver{granted: access.NewPermissionSet(access.PermBloodRead)}
	app := buildTestApp(resolver, access.PermBloodRead, access.PermBloodWrite)
	resp := doRequest(t, app, tokenFor(t, "donor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"basta un permiso faltante para denegar")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: un fallo de infraestructura al resolver los permisos del rol se
// mapea igual que cualquier otro error del dominio → HTTP 500 INTERNAL.
func TestRequirePermissions_ResolverFalla_Retorna500(t *testing.T) {
	resolver := stubResolver{err: errors.New("db down")}
	app := buildTestApp(resolver, access.PermBloodRead)
	resp := doRequest(t, app, tokenFor(t, "donor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL")
}

// Caso 4: sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequirePermissions_SinAuthHeader_Retorna401(t *testing.T) {
	resolver := stubResolver{granted: access.NewPermissionSet(access.PermBloodRead)}
	app := buildTestApp(resolver, access.PermBloodRead)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequirePermissions_TokenInvalido_Retorna401(t *testing.T) {
	resolver := stubResolver{granted: access.NewPermissionSet(access.PermBloodRead)}
	app := buildTestApp(resolver, access.PermBloodRead)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"role_id":   apphttp.GetRoleID(c),
			"role_name": apphttp.GetRoleName(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testRoleID, body["role_id"])
	assert.Equal(t, "admin", body["role_name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, "entity", testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, roleID, roleName, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testRoleID, roleID)
	assert.Equal(t, "entity", roleName)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, "admin", testIssuer, -1)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testRoleID, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
