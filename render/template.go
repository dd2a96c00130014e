package render

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"sync"

	"parkour_scoreboard/share"

	"github.com/pkg/errors"
)

const (
	tmplIndex = "index.tmpl.htm"
	tmplBoard = "scoreboard.tmpl.htm"
)

// embeddedAssets are served and built under assets/.
var embeddedAssets = []string{
	"scoreboard.css",
	"scoreboard.js",
}

//go:embed resources
var resources embed.FS

var (
	tmplPages = template.Must(
		template.New("").
			Funcs(share.TemplateFuncMap).
			ParseFS(resources, "resources/*.tmpl.htm"),
	)

	tmplBufPool = sync.Pool{
		New: func() interface{} {
			b := new(bytes.Buffer)
			b.Grow(64 * 1024)

			return b
		},
	}
)

// execute writes only complete pages to w.
func execute(w io.Writer, name string, data interface{}) error {
	buf := tmplBufPool.Get().(*bytes.Buffer)
	defer tmplBufPool.Put(buf)

	buf.Reset()
	err := tmplPages.ExecuteTemplate(buf, name, data)
	if err != nil {
		return errors.Wrapf(err, "executing %s", name)
	}

	_, err = buf.WriteTo(w)
	return errors.WithStack(err)
}

// EmbeddedAsset returns the content of one of the embedded assets.
func EmbeddedAsset(name string) ([]byte, bool) {
	for _, v := range embeddedAssets {
		if v == name {
			b, err := resources.ReadFile("resources/" + name)
			return b, err == nil
		}
	}
	return nil, false
}
