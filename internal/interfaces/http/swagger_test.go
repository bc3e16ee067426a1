package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

const minimalSwaggerSpec = `{"swagger":"2.0","info":{"title":"Almacen API","version":"1.0"},"paths":{}}`

// Sin el archivo de especificación la API debe seguir arrancando: el montaje
// se omite (no se llega al middleware, que entra en pánico con el archivo
// ausente) y el resto de rutas responde con normalidad.
func TestMountSwagger_SinArchivoNoMontaYLaAppSirve(t *testing.T) {
	app := fiber.New()
	missing := filepath.Join(t.TempDir(), "swagger.json")

	mounted := func() bool {
		defer func() {
			require.Nil(t, recover(), "montar sin archivo no debe entrar en pánico")
		}()
		return apphttp.MountSwagger(app, missing)
	}()
	assert.False(t, mounted, "sin archivo el montaje debe omitirse")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "la app debe servir aunque falte la UI")
}

// Con el archivo presente la UI se monta y /docs responde.
func TestMountSwagger_ConArchivoMontaLaUI(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.json")
	require.NoError(t, os.WriteFile(specPath, []byte(minimalSwaggerSpec), 0o644))

	app := fiber.New()
	assert.True(t, apphttp.MountSwagger(app, specPath))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "/docs debe servir la UI de Swagger")
}

// El archivo estático del repo debe existir y ser legible: es el que monta cmd/api.
func TestMountSwagger_EspecificacionDelRepo(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "docs", "swagger.json"))
	require.NoError(t, err, "docs/swagger.json debe estar versionado en el repo")
	assert.Contains(t, string(data), `"swagger"`)
}
