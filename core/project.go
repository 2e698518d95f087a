package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

const PlaceholderImage = "/placeholder.svg"

type Project struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	CoverImage  string   `json:"coverImage"`
	Tags        []string `json:"tags"`
	GitHub      string   `json:"github"`
	Demo        string   `json:"demo"`
	Featured    bool     `json:"featured"`
	Content     string   `json:"content"`
}

type Projects []*Project

// MapProject normalizes a raw content file into a project. Projects without a
// title or a description are rejected with an error wrapping
// [ErrInvalidContent]. fallbackID is used when the file sets no id.
func MapProject(raw *RawContent, fallbackID int) (*Project, error) {
	fr := newFrontMatter(raw.Data)

	p := &Project{
		ID:          fr.IntOr("id", 0),
		Slug:        raw.Slug,
		Title:       fr.text("title"),
		Description: fr.text("description"),
		Date:        fr.date("date"),
		CoverImage:  fr.text("coverImage", "image"),
		Tags:        fr.list("tags"),
		GitHub:      fr.text("github"),
		Demo:        fr.text("demo"),
		Featured:    fr.flag("featured"),
		Content:     raw.Content,
	}

	var errs error
	if p.Title == "" {
		errs = errors.Join(errs, errors.New("missing title"))
	}
	if p.Description == "" {
		errs = errors.Join(errs, errors.New("missing description"))
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: project %q: %w", ErrInvalidContent, raw.Slug, errs)
	}

	if p.ID == 0 {
		p.ID = fallbackID
	}

	if p.CoverImage == "" {
		p.CoverImage = PlaceholderImage
	}

	return p, nil
}

// Featured returns the projects marked as featured.
func (pp Projects) Featured() Projects {
	return lo.Filter(pp, func(p *Project, _ int) bool {
		return p.Featured
	})
}

// GetProjects reads every project. Invalid project files are left out of the
// collection, they do not fail it.
func (co *Core) GetProjects() (Projects, error) {
	raws, err := co.ReadCollection(co.cfg.ProjectsDirectory)
	if err != nil {
		return nil, err
	}

	projects := make(Projects, 0, len(raws))
	for i, raw := range raws {
		p, err := MapProject(raw, i+1)
		if err != nil {
			co.log.Warnw("ignoring project", "slug", raw.Slug, "err", err)
			continue
		}
		projects = append(projects, p)
	}

	return projects, nil
}

// GetProject returns the project for slug. It returns [ErrNotFound] if there is
// no file and [ErrInvalidContent] if the file is not a valid project.
func (co *Core) GetProject(slug string) (*Project, error) {
	raw, err := co.ReadContent(co.cfg.ProjectsDirectory, slug)
	if err != nil {
		return nil, err
	}

	// The fallback id is the position in the listing, so that both agree.
	slugs, err := co.listSlugs(co.cfg.ProjectsDirectory)
	if err != nil {
		return nil, err
	}

	return MapProject(raw, slices.Index(slugs, slug)+1)
}

type ContentProblem struct {
	Slug string
	Err  error
}

// CheckContent reports the project files that would be left out of the
// projects listing.
func (co *Core) CheckContent() ([]ContentProblem, error) {
	raws, err := co.ReadCollection(co.cfg.ProjectsDirectory)
	if err != nil {
		return nil, err
	}

	var problems []ContentProblem
	for i, raw := range raws {
		if _, err := MapProject(raw, i+1); err != nil {
			problems = append(problems, ContentProblem{Slug: raw.Slug, Err: err})
		}
	}

	return problems, nil
}
