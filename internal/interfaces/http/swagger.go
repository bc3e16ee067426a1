package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// MountSwagger monta la UI de Swagger en /docs si el archivo de especificación
// existe. La UI es opcional: un despliegue que no copia docs/ debe arrancar
// igual, por eso no se monta el middleware (que entra en pánico con el archivo
// ausente) y se devuelve false para que el caller lo registre.
func MountSwagger(app *fiber.App, filePath string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "Almacen API",
	}))
	return true
}
