package wire

import (
	"net/http"

	"yamdb/docs"

	"github.com/go-chi/chi/v5"
)

const swaggerPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>YaMDb API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/swagger/doc.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`

const redocPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>YaMDb API</title>
</head>
<body>
  <redoc spec-url="/swagger/doc.json"></redoc>
  <script src="https://unpkg.com/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>`

// wireDocs serves the OpenAPI document with two viewers on top of it.
func wireDocs(r chi.Router) {
	r.Get("/swagger/doc.json", openAPIDoc)
	r.Get("/swagger", htmlPage(swaggerPage))
	r.Get("/redoc", htmlPage(redocPage))
}

// openAPIDoc renders the document for the host the client used, so "Try it out" hits the same server.
func openAPIDoc(w http.ResponseWriter, r *http.Request) {
	spec := *docs.SwaggerInfo
	spec.Host = r.Host
	spec.Schemes = []string{requestScheme(r)}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(spec.ReadDoc()))
}

func htmlPage(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(page))
	}
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
