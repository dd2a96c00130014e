package frontend

import (
	"net/http"

	"parkour_scoreboard/render"

	"github.com/gin-gonic/gin"
)

// Route serves a read-only preview of the site. Every request renders from
// the loaded dataset.
func Route(g *gin.Engine, site *render.Site, assetsDir string) {
	g.Use(gin.ErrorLogger())
	g.Use(gin.Recovery())

	h := &handler{
		site:   site,
		assets: http.Dir(assetsDir),
		linker: render.QueryLinker{Base: "/"},
	}

	g.NoMethod(func(c *gin.Context) { c.Redirect(http.StatusTemporaryRedirect, "/") })
	g.NoRoute(func(c *gin.Context) { c.Redirect(http.StatusTemporaryRedirect, "/") })

	g.GET("/assets/*filepath", h.asset)
	g.GET("/", h.index)
	g.GET("/event/:event", h.board)
}
