package swagger

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register attaches the documentation routes:
//
//	GET /docs              -> Swagger UI
//	GET /docs/openapi.yaml -> embedded OpenAPI spec
func Register(e *echo.Echo) {
	if e == nil {
		panic("echo is nil")
	}

	docs := e.Group("/docs")
	docs.GET("", func(c echo.Context) error {
		return c.HTML(http.StatusOK, indexHTML)
	})
	docs.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml; charset=utf-8", OpenAPI)
	})
}

const indexHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>Navigation API - Swagger UI</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>window.ui = SwaggerUIBundle({ url: '/docs/openapi.yaml', dom_id: '#swagger-ui' });</script>
  </body>
</html>`
