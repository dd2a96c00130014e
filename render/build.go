package render

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"parkour_scoreboard/logging"
	"parkour_scoreboard/scoreboard"
	"parkour_scoreboard/share"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

const manifestFile = "build.json"

type BuildOptions struct {
	Output string
	Assets string // copied into <output>/assets when it exists
	Base   string
}

type Manifest struct {
	BuildID string    `json:"build_id"`
	BuiltAt time.Time `json:"built_at"`
	Pages   []string  `json:"pages"`
}

var ErrUnsafeID = errors.New("id cannot be used as a page directory")

// Build writes the static site: the event index, one default page per event
// and one page per menu entry.
func (s *Site) Build(opt BuildOptions) (*Manifest, error) {
	m := &Manifest{
		BuildID: uuid.NewString(),
		BuiltAt: time.Now().UTC(),
	}
	l := StaticLinker{
		Base:    opt.Base,
		Version: m.BuildID,
	}

	err := s.build(opt, l, m)
	if err != nil {
		share.Report(err)
		return nil, err
	}

	logging.Log.Infof("built %d pages into %s (build %s)", len(m.Pages), opt.Output, m.BuildID)
	return m, nil
}

type boardPages struct {
	dir   string
	board *scoreboard.Board
}

func (s *Site) build(opt BuildOptions, l StaticLinker, m *Manifest) error {
	// every id is checked before anything is written
	boards := make([]boardPages, 0, len(s.ds.Events))
	for _, e := range s.ds.Events {
		err := checkID(e.ID)
		if err != nil {
			return errors.Wrap(err, "event")
		}

		b, err := scoreboard.New(s.ds, e.ID, s.opt)
		if err != nil {
			return err
		}
		for _, entry := range b.Menu {
			err = checkID(entry.ID)
			if err != nil {
				return errors.Wrapf(err, "%s of event %q", b.Layout.Attr(), e.ID)
			}
		}

		boards = append(boards, boardPages{dir: e.ID, board: b})
	}

	if opt.Assets != "" {
		err := copyDir(filepath.Join(opt.Output, "assets"), opt.Assets)
		if err != nil && !os.IsNotExist(errors.Cause(err)) {
			return err
		}
	}

	for _, name := range embeddedAssets {
		content, _ := EmbeddedAsset(name)
		err := writeFile(filepath.Join(opt.Output, "assets", name), func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		})
		if err != nil {
			return err
		}
	}

	err := s.page(opt.Output, m, "index.html", func(w io.Writer) error {
		return s.Index(w, l)
	})
	if err != nil {
		return err
	}

	for _, bp := range boards {
		b := bp.board
		initial := b.Initial(nil)

		err = s.page(opt.Output, m, bp.dir+"/index.html", func(w io.Writer) error {
			return s.renderBoard(w, b, initial, l)
		})
		if err != nil {
			return err
		}

		param := b.Layout.Param()
		for _, entry := range b.Menu {
			state := initial.Show(entry.Unit)

			name := bp.dir + "/" + param + "/" + entry.ID + "/index.html"
			err = s.page(opt.Output, m, name, func(w io.Writer) error {
				return s.renderBoard(w, b, state, l)
			})
			if err != nil {
				return err
			}
		}
	}

	return writeFile(filepath.Join(opt.Output, manifestFile), func(w io.Writer) error {
		enc := jsoniter.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	})
}

// checkID rejects ids that would leave their page directory.
func checkID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return errors.Wrapf(ErrUnsafeID, "%q", id)
	}
	return nil
}

func (s *Site) page(output string, m *Manifest, name string, fn func(w io.Writer) error) error {
	path := filepath.Join(output, filepath.FromSlash(name))

	rel, err := filepath.Rel(output, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return errors.Wrapf(ErrUnsafeID, "page %s is outside %s", name, output)
	}

	err = writeFile(path, fn)
	if err != nil {
		return errors.Wrapf(err, "page %s", name)
	}

	m.Pages = append(m.Pages, name)
	logging.Log.Debugf("wrote %s", name)
	return nil
}

func writeFile(path string, fn func(w io.Writer) error) error {
	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return errors.WithStack(err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}

	err = fn(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "writing %s", path)
}

func copyDir(dst string, src string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.WithStack(err)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return errors.WithStack(err)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return errors.WithStack(os.MkdirAll(target, 0o755))
		}

		return writeFile(target, func(w io.Writer) error {
			r, err := os.Open(path)
			if err != nil {
				return err
			}
			defer r.Close()

			_, err = io.Copy(w, r)
			return err
		})
	})
}
