// Package itemdata loads catalog records from a published item data file of
// the form {"baseitem": [...], "item": [...]}.
package itemdata

//go:generate mockgen -destination=mock/mock_client.go -package=mockitemdata -source=itemdata.go

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	internal "github.com/KirkDiggler/dnd-item-catalog/internal"
	"github.com/KirkDiggler/dnd-item-catalog/internal/domain/item"
	caterr "github.com/KirkDiggler/dnd-item-catalog/internal/errors"
)

// Client serves the records of one item data file
type Client interface {
	ListBaseItems(ctx context.Context) ([]*item.Item, error)
	ListItems(ctx context.Context) ([]*item.Item, error)
}

// File is the on-disk shape of an item data file
type File struct {
	BaseItems []*item.Item `json:"baseitem"`
	Items     []*item.Item `json:"item"`
}

type Config struct {
	// Path of the data file, relative to FS when FS is set
	Path string
	FS   fs.FS
}

type client struct {
	path string
	fsys fs.FS

	once sync.Once
	data *File
	err  error
}

func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, internal.NewMissingParamError("cfg")
	}
	if cfg.Path == "" {
		return nil, internal.NewMissingParamError("cfg.Path")
	}

	fsys := cfg.FS
	path := cfg.Path
	if fsys == nil {
		fsys = os.DirFS(filepath.Dir(cfg.Path))
		path = filepath.Base(cfg.Path)
	}

	return &client{
		path: path,
		fsys: fsys,
	}, nil
}

func (c *client) load() (*File, error) {
	c.once.Do(func() {
		raw, err := fs.ReadFile(c.fsys, c.path)
		if errors.Is(err, fs.ErrNotExist) {
			c.err = caterr.Unavailablef("item data %s does not exist", c.path).
				WithMeta("path", c.path)
			return
		}
		if err != nil {
			c.err = caterr.Wrapf(err, "failed to read item data %s", c.path)
			return
		}

		var data File
		if err := json.Unmarshal(raw, &data); err != nil {
			c.err = caterr.DataIntegrityf("item data %s is not valid JSON: %v", c.path, err).
				WithMeta("path", c.path)
			return
		}

		log.Printf("Loaded item data %s: %d base items, %d items", c.path, len(data.BaseItems), len(data.Items))
		c.data = &data
	})
	return c.data, c.err
}

func (c *client) ListBaseItems(ctx context.Context) ([]*item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := c.load()
	if err != nil {
		return nil, err
	}
	return compact(data.BaseItems), nil
}

func (c *client) ListItems(ctx context.Context) ([]*item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := c.load()
	if err != nil {
		return nil, err
	}
	return compact(data.Items), nil
}

// compact returns a fresh slice so callers cannot reorder the cached records
func compact(items []*item.Item) []*item.Item {
	out := make([]*item.Item, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}
