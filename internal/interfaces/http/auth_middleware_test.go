package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Almacen-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "almacen-api-test"
	testExpMin    = 60
)

// buildRoleApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildRoleApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// buildPageApp igual que buildRoleApp pero con RequirePage.
func buildPageApp(pageName string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePage(pageName),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol y las páginas indicadas.
func tokenFor(t *testing.T, role string, pages []string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, pages, testIssuer, testExpMin)
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
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderRechazado(t *testing.T) {
	app := buildRoleApp(entity.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"sin Authorization header debe responder 401")
}

func TestAuthMiddleware_FormatoInvalidoRechazado(t *testing.T) {
	app := buildRoleApp(entity.RoleAdmin)
	resp := doRequest(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"el header debe tener formato Bearer <token>")
}

func TestAuthMiddleware_FirmaIncorrectaRechazada(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, entity.RoleAdmin, nil, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildRoleApp(entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token firmado con otro secreto debe rechazarse")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el usuario tiene el rol requerido → HTTP 200.
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildRoleApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleAdmin, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, entity.RoleAdmin, body["role"], "el role debe ser admin")
}

// Caso 1b: el usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_BodegueroAccedeRutaMultiRol(t *testing.T) {
	app := buildRoleApp(entity.RoleAdmin, entity.RoleBodeguero)
	resp := doRequest(t, app, tokenFor(t, entity.RoleBodeguero, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"bodeguero debe poder acceder a ruta admin|bodeguero")
}

// Caso 2: el usuario NO tiene el rol requerido → HTTP 403.
func TestRequireRole_ConsultaNoAccedeRutaAdmin(t *testing.T) {
	app := buildRoleApp(entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, entity.RoleConsulta, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"consulta no debe acceder a ruta restringida a admin")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePage
// ──────────────────────────────────────────────────────────────────────────────

// El usuario con la página habilitada accede.
func TestRequirePage_PaginaHabilitada(t *testing.T) {
	app := buildPageApp(entity.PageInbound)
	resp := doRequest(t, app, tokenFor(t, entity.RoleBodeguero,
		[]string{entity.PageInbound, entity.PageStock}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Sin la página habilitada la petición se rechaza con 403 PAGE_DISABLED.
func TestRequirePage_PaginaDeshabilitada(t *testing.T) {
	app := buildPageApp(entity.PageRevenue)
	resp := doRequest(t, app, tokenFor(t, entity.RoleBodeguero,
		[]string{entity.PageInbound, entity.PageStock}))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"página no habilitada debe responder 403")

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "PAGE_DISABLED", body["code"])
}

// Un token sin claim de páginas no habilita ninguna página.
func TestRequirePage_SinPaginasEnElToken(t *testing.T) {
	app := buildPageApp(entity.PageStock)
	resp := doRequest(t, app, tokenFor(t, entity.RoleConsulta, nil))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}
