package docs

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

var routerAnnotation = regexp.MustCompile(`^//\s*@Router\s+(\S+)\s+\[(\w+)\]`)

// annotatedRoutes collects the "METHOD path" pairs declared on the handlers.
func annotatedRoutes(t *testing.T) []string {
	t.Helper()
	files, err := filepath.Glob(filepath.Join("..", "handler", "*.go"))
	require.NoError(t, err)
	var routes []string
	for _, file := range files {
		if strings.HasSuffix(file, "_test.go") {
			continue
		}
		src, err := os.ReadFile(file)
		require.NoError(t, err)
		for _, line := range strings.Split(string(src), "\n") {
			if m := routerAnnotation.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				routes = append(routes, strings.ToUpper(m[2])+" "+m[1])
			}
		}
	}
	return routes
}

func TestDocMatchesAnnotations(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var parsed struct {
		Info struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, jsoniter.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "Library Portal API", parsed.Info.Title)
	assert.Equal(t, "1.0.0", parsed.Info.Version)

	var documented []string
	for path, ops := range parsed.Paths {
		for method := range ops {
			documented = append(documented, strings.ToUpper(method)+" "+path)
		}
	}

	routes := annotatedRoutes(t)
	require.NotEmpty(t, routes)
	assert.ElementsMatch(t, routes, documented)
}
