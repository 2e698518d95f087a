package core

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/samber/lo"
)

const (
	excerptLength  = 300
	wordsPerMinute = 200
)

type Post struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Date       string   `json:"date"`
	CoverImage string   `json:"coverImage"`
	Excerpt    string   `json:"excerpt"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	ReadTime   string   `json:"readTime"`
	Content    string   `json:"content"`
}

// Time returns the parsed date of the post, or the zero time if the date is
// empty or cannot be parsed.
func (p *Post) Time() time.Time {
	return parseDate(p.Date)
}

type Posts []*Post

// MapPost normalizes a raw content file into a post. Every field has a
// default, so no post is ever rejected.
func MapPost(raw *RawContent) *Post {
	fr := newFrontMatter(raw.Data)

	title, _ := lo.Coalesce(fr.text("title"), raw.Slug)

	excerpt := fr.text("excerpt", "description")
	if excerpt == "" {
		excerpt = truncateStringWithEllipsis(makePlainText(raw.Content), excerptLength)
	}

	readTime := fr.text("readTime")
	if readTime == "" {
		readTime = readingTime(raw.Content)
	}

	return &Post{
		Slug:       raw.Slug,
		Title:      title,
		Date:       fr.date("date"),
		CoverImage: fr.text("coverImage", "image"),
		Excerpt:    excerpt,
		Category:   fr.text("category"),
		Tags:       fr.list("tags"),
		ReadTime:   readTime,
		Content:    raw.Content,
	}
}

// SortPosts sorts posts by date, most recent first. Posts without a usable
// date go last, keeping their relative order.
func SortPosts(posts Posts) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Time().After(posts[j].Time())
	})
}

// Filter returns the posts in the given category whose title or excerpt
// contain query. Both comparisons ignore case, and empty arguments match all.
func (pp Posts) Filter(category, query string) Posts {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)

	return lo.Filter(pp, func(p *Post, _ int) bool {
		if category != "" && !strings.EqualFold(category, "all") && !strings.EqualFold(p.Category, category) {
			return false
		}

		if query == "" {
			return true
		}

		return strings.Contains(strings.ToLower(p.Title), query) ||
			strings.Contains(strings.ToLower(p.Excerpt), query)
	})
}

// Categories returns the distinct non-empty categories, in order of appearance.
func (pp Posts) Categories() []string {
	categories := lo.Map(pp, func(p *Post, _ int) string {
		return p.Category
	})
	return lo.Uniq(lo.Compact(categories))
}

func (co *Core) GetPosts() (Posts, error) {
	raws, err := co.ReadCollection(co.cfg.PostsDirectory)
	if err != nil {
		return nil, err
	}

	posts := make(Posts, 0, len(raws))
	for _, raw := range raws {
		posts = append(posts, MapPost(raw))
	}

	SortPosts(posts)
	return posts, nil
}

func (co *Core) GetPost(slug string) (*Post, error) {
	raw, err := co.ReadContent(co.cfg.PostsDirectory, slug)
	if err != nil {
		return nil, err
	}

	return MapPost(raw), nil
}

func parseDate(date string) time.Time {
	if date == "" {
		return time.Time{}
	}

	t, err := dateparse.ParseAny(date)
	if err != nil {
		return time.Time{}
	}

	return t
}

func readingTime(content string) string {
	minutes := int(math.Ceil(float64(countWords(content)) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
