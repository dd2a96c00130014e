package frontend

import (
	"bytes"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"parkour_scoreboard/logging"
	"parkour_scoreboard/render"
	"parkour_scoreboard/scoreboard"
	"parkour_scoreboard/share"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

const contentTypeHTML = "text/html; charset=utf-8"

type handler struct {
	site   *render.Site
	assets http.FileSystem
	linker render.Linker
}

func (h *handler) asset(c *gin.Context) {
	path := c.Param("filepath")
	if content, ok := render.EmbeddedAsset(strings.TrimPrefix(path, "/")); ok {
		c.Data(http.StatusOK, mime.TypeByExtension(filepath.Ext(path)), content)
		return
	}

	c.FileFromFS(path, h.assets)
}

func (h *handler) index(c *gin.Context) {
	var buf bytes.Buffer
	err := h.site.Index(&buf, h.linker)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Data(http.StatusOK, contentTypeHTML, buf.Bytes())
}

func (h *handler) board(c *gin.Context) {
	eventID := c.Param("event")

	var buf bytes.Buffer
	err := h.site.Board(&buf, eventID, c.Request.URL.Query(), h.linker)
	if err != nil {
		if errors.Is(err, scoreboard.ErrEventNotFound) {
			logging.Log.Infof("preview: %v", err)
			c.String(http.StatusNotFound, "Event not found (input id was \"%s\").", eventID)
			return
		}
		h.fail(c, err)
		return
	}

	c.Data(http.StatusOK, contentTypeHTML, buf.Bytes())
}

func (h *handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	share.Report(err)
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
