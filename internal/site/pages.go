package site

import (
	"github.com/ezerfernandes/mdfolio/internal/blog"
	"github.com/gofiber/fiber/v2"
)

const (
	navHome  = "home"
	navAbout = "about"
	navBlog  = "blog"
)

func (s *Server) home(c *fiber.Ctx) error {
	return c.Render("home", s.bind(navHome, fiber.Map{}))
}

func (s *Server) about(c *fiber.Ctx) error {
	article, err := s.blog.Page(c.UserContext(), "about")
	if err != nil {
		return err
	}

	return c.Render("article", s.bind(navAbout, s.articleData(article)))
}

func (s *Server) blogIndex(c *fiber.Ctx) error {
	posts, err := s.blog.Posts(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(posts))
	for _, post := range posts {
		item := fiber.Map{
			"slug":  post.Slug,
			"title": post.Title(),
			"date":  "",
		}

		if date, ok := post.Attributes.Date(); ok {
			item["date"] = formatDate(date, htmlLang(post.Attributes.Lang(), s.site.Lang))
		}

		items = append(items, item)
	}

	return c.Render("blog", s.bind(navBlog, fiber.Map{"posts": items}))
}

func (s *Server) blogPost(c *fiber.Ctx) error {
	article, err := s.blog.Post(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}

	return c.Render("article", s.bind(navBlog, s.articleData(article)))
}

func (s *Server) articleData(article *blog.Article) fiber.Map {
	attrs := article.Document.Attributes
	lang := htmlLang(attrs.Lang(), s.site.Lang)

	data := fiber.Map{
		"title":       attrs.Title(),
		"description": attrs.Description(),
		"keywords":    attrs.Keywords(),
		"lang":        lang,
		"body":        string(article.HTML),
		"date":        "",
	}

	if date, ok := attrs.Date(); ok {
		data["date"] = formatDate(date, lang)
	}

	return data
}

// bind merges page data with the values every layout needs.
func (s *Server) bind(active string, data fiber.Map) fiber.Map {
	links := make([]fiber.Map, 0, len(s.site.Links))
	for _, link := range s.site.Links {
		links = append(links, fiber.Map{"name": link.Name, "url": link.URL})
	}

	bound := fiber.Map{
		"site_title": s.site.Title,
		"author":     s.site.Author,
		"avatar":     s.site.Avatar,
		"tagline":    s.site.Tagline,
		"bio":        s.site.Bio,
		"links":      links,
		"email":      s.site.Email,
		"lang":       htmlLang("", s.site.Lang),
		"active":     active,
		"nav":        navigation(active),
	}

	for key, value := range data {
		bound[key] = value
	}

	return bound
}

func navigation(active string) []fiber.Map {
	entries := []struct{ key, label, href string }{
		{navHome, "Home", "/"},
		{navAbout, "About", "/about"},
		{navBlog, "Blog", "/blog"},
	}

	nav := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		nav = append(nav, fiber.Map{
			"label":  entry.label,
			"href":   entry.href,
			"active": entry.key == active,
		})
	}

	return nav
}
