package core

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

const contentExtension = ".md"

// RawContent is a content file split into its front-matter and body.
type RawContent struct {
	Slug    string
	Data    map[string]any
	Content string
}

// ReadCollection reads every markdown file directly inside dir, in name order.
// Any read error aborts the whole collection.
func (co *Core) ReadCollection(dir string) ([]*RawContent, error) {
	slugs, err := co.listSlugs(dir)
	if err != nil {
		return nil, err
	}

	raws := make([]*RawContent, 0, len(slugs))
	for _, slug := range slugs {
		raw, err := co.readRaw(dir, slug)
		if err != nil {
			return nil, err
		}
		raws = append(raws, raw)
	}

	return raws, nil
}

// ReadContent reads the file for slug inside dir. It returns [ErrNotFound] if
// there is no such file.
func (co *Core) ReadContent(dir, slug string) (*RawContent, error) {
	if !validSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}

	raw, err := co.readRaw(dir, slug)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return raw, err
}

func (co *Core) listSlugs(dir string) ([]string, error) {
	infos, err := co.sourceFS.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list %s: %w", dir, err)
	}

	var slugs []string
	for _, info := range infos {
		if !info.Mode().IsRegular() || !strings.HasSuffix(info.Name(), contentExtension) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(info.Name(), contentExtension))
	}

	return slugs, nil
}

func (co *Core) readRaw(dir, slug string) (*RawContent, error) {
	data, err := co.sourceFS.ReadFile(path.Join(dir, slug+contentExtension))
	if err != nil {
		return nil, err
	}

	fr, content := ParseFrontMatter(string(data))
	return &RawContent{
		Slug:    slug,
		Data:    fr,
		Content: content,
	}, nil
}

func validSlug(slug string) bool {
	return slug != "" &&
		slug != "." &&
		!strings.Contains(slug, "..") &&
		!strings.ContainsAny(slug, `/\`)
}
