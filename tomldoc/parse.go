package tomldoc

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/tomlkit/internal/logger"
	"github.com/joshuapare/tomlkit/internal/mmfile"
	"github.com/joshuapare/tomlkit/internal/parsetree"
	"github.com/joshuapare/tomlkit/internal/textenc"
	"github.com/joshuapare/tomlkit/pkg/types"
)

// Parse parses TOML text and returns the root view of the new document.
// A nil opts selects the defaults.
func Parse(text string, opts *types.ParseOptions) (*Table, error) {
	o := opts.WithDefaults()
	if err := checkSize(int64(len(text)), o.MaxInputSize); err != nil {
		return nil, err
	}
	return parse(text, o)
}

// ParseBytes parses a document held in memory. A leading byte order mark is
// removed and UTF-16 input is transcoded to UTF-8 first.
func ParseBytes(data []byte, opts *types.ParseOptions) (*Table, error) {
	o := opts.WithDefaults()
	if err := checkSize(int64(len(data)), o.MaxInputSize); err != nil {
		return nil, err
	}
	return parseData(data, o)
}

// ParseReader reads r to the end and parses the result like ParseBytes.
func ParseReader(r io.Reader, opts *types.ParseOptions) (*Table, error) {
	o := opts.WithDefaults()
	data, err := io.ReadAll(io.LimitReader(r, o.MaxInputSize+1))
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: "cannot read input", Err: err}
	}
	if err := checkSize(int64(len(data)), o.MaxInputSize); err != nil {
		return nil, err
	}
	return parseData(data, o)
}

// ParseFile parses the document stored at path. On unix systems the file is
// memory-mapped for the duration of the parse unless opts.NoMmap is set.
func ParseFile(path string, opts *types.ParseOptions) (*Table, error) {
	o := opts.WithDefaults()

	info, err := os.Stat(path)
	if err != nil {
		return nil, ioError(path, err)
	}
	if err := checkSize(info.Size(), o.MaxInputSize); err != nil {
		return nil, err
	}

	var (
		data    []byte
		cleanup = func() error { return nil }
	)
	if o.NoMmap {
		data, err = os.ReadFile(path)
	} else {
		data, cleanup, err = mmfile.Map(path)
	}
	if err != nil {
		return nil, ioError(path, err)
	}
	defer func() {
		if cerr := cleanup(); cerr != nil {
			logger.Warn("unmap failed", "path", path, "err", cerr)
		}
	}()

	logger.Debug("toml file loaded", "path", path, "size", len(data), "mmap", !o.NoMmap)
	return parseData(data, o)
}

func ioError(path string, err error) error {
	return &types.Error{
		Kind: types.ErrKindIO,
		Msg:  fmt.Sprintf("cannot open file %s for reading", path),
		Err:  err,
	}
}

func checkSize(n, limit int64) error {
	if n > limit {
		return types.Errorf(types.ErrKindIO, "input too large (%d bytes, limit %d)", n, limit)
	}
	return nil
}

// parseData decodes data to text. The text never aliases data, so a mapped
// file can be unmapped as soon as parsing returns.
func parseData(data []byte, o types.ParseOptions) (*Table, error) {
	text, err := textenc.Decode(data)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindParse, Msg: types.BoundMessage(err.Error()), Err: err}
	}
	return parse(text, o)
}

func parse(text string, o types.ParseOptions) (*Table, error) {
	tree, err := parsetree.Parse(text, parsetree.Options{MaxDecodeBytes: o.MaxDecodeBytes})
	if err != nil {
		logger.Debug("toml parse failed", "err", err)
		return nil, err
	}
	t := newTableView(tree, nil)
	t.root.onRelease = o.OnRelease
	return t, nil
}
