package store

import (
	"io"
	"os"

	"github.com/dimchansky/utfbom"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// Load decodes the JSON file at path into v.
func Load(path string, v interface{}) error {
	fs, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer fs.Close()

	sr, _ := utfbom.Skip(fs)

	err = jsoniter.NewDecoder(sr).Decode(v)
	if err == io.EOF {
		return errors.Errorf("%s: empty file", path)
	}
	if err != nil {
		return errors.Wrapf(err, "decoding %s", path)
	}

	return nil
}

// IsNotExist reports whether err comes from a missing file.
func IsNotExist(err error) bool {
	return os.IsNotExist(errors.Cause(err))
}

func LoadEvents(path string) (r Events, err error) {
	err = Load(path, &r)
	return
}

func LoadMaps(path string) (r Maps, err error) {
	err = Load(path, &r)
	return
}

func LoadLinks(path string) (r Links, err error) {
	err = Load(path, &r)
	return
}

func LoadScores(path string) (r Scores, err error) {
	err = Load(path, &r)
	return
}
