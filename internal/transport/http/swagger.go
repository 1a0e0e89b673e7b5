package http

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/njprem/fitcity-offers/internal/util"
)

// RegisterSwagger serves the YAML API description in docsDir as JSON under
// /swagger/doc.json, next to the Swagger UI.
func RegisterSwagger(e *echo.Echo, docsDir string) {
	e.GET("/swagger/doc.json", func(c echo.Context) error {
		data, err := os.ReadFile(filepath.Join(docsDir, "swagger.yaml"))
		if err != nil {
			c.Logger().Errorf("load swagger spec: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to load swagger spec"))
		}
		jsonSpec, err := yaml.YAMLToJSON(data)
		if err != nil {
			c.Logger().Errorf("convert swagger spec: %v", err)
			return c.JSON(http.StatusInternalServerError, util.Error("unable to parse swagger spec"))
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, jsonSpec)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
