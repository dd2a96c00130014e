package render

import (
	"net/url"
)

// Linker builds the URLs of rendered pages. Static builds and the preview
// address the same selection differently. menuOpen is the menu state of
// the page the link leads to.
type Linker interface {
	Index() string
	Event(eventID string) string
	Unit(eventID string, param string, id string, menuOpen bool) string
	Toggle(eventID string, param string, id string, menuOpen bool) string
	Asset(path string) string
}

// StaticLinker addresses one directory per page:
// <base><event>/<param>/<id>/. The menu opens through a fragment.
type StaticLinker struct {
	Base    string
	Version string
}

func (l StaticLinker) Index() string {
	return l.Base
}

func (l StaticLinker) Event(eventID string) string {
	return l.Base + url.PathEscape(eventID) + "/"
}

func (l StaticLinker) Unit(eventID string, param string, id string, menuOpen bool) string {
	u := l.Event(eventID) + param + "/" + url.PathEscape(id) + "/"
	if menuOpen {
		u += "#" + ListID(param)
	}
	return u
}

// Toggle stays on the current page.
func (l StaticLinker) Toggle(eventID string, param string, id string, menuOpen bool) string {
	if menuOpen {
		return "#" + ListID(param)
	}
	return "#"
}

func (l StaticLinker) Asset(path string) string {
	if l.Version == "" {
		return l.Base + path
	}
	return l.Base + path + "?v=" + url.QueryEscape(l.Version)
}

// QueryLinker addresses the selection and the menu state through the query
// string: <base>event/<event>?<param>=<id>&menu=open.
type QueryLinker struct {
	Base string
}

func (l QueryLinker) Index() string {
	return l.Base
}

func (l QueryLinker) Event(eventID string) string {
	return l.Base + "event/" + url.PathEscape(eventID)
}

func (l QueryLinker) Unit(eventID string, param string, id string, menuOpen bool) string {
	q := url.Values{param: {id}}
	if menuOpen {
		q.Set("menu", "open")
	}
	return l.Event(eventID) + "?" + q.Encode()
}

func (l QueryLinker) Toggle(eventID string, param string, id string, menuOpen bool) string {
	return l.Unit(eventID, param, id, menuOpen)
}

func (l QueryLinker) Asset(path string) string {
	return l.Base + path
}

// ListID is the element id of the menu list.
func ListID(param string) string {
	if param == "route" {
		return "resultsList"
	}
	return "mapsList"
}

// ImageID is the element id of the header illustration.
func ImageID(param string) string {
	if param == "route" {
		return "routeSelectorImage"
	}
	return "mapSelectorImage"
}
