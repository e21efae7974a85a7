package server

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/alkime/postgen/internal/content"
	"github.com/alkime/postgen/internal/export"
	"github.com/alkime/postgen/internal/schedule"
	"github.com/gin-gonic/gin"
)

// Post count bounds accepted by the generate form.
const (
	MinPostCount = 1
	MaxPostCount = 50
)

// generateForm is the generation request submitted from the index page.
type generateForm struct {
	Topic      string `form:"topic" binding:"required"`
	Platform   string `form:"platform"`
	Tone       string `form:"tone"`
	PostCount  *int   `form:"postCount"`
	BaseDate   string `form:"baseDate"`
	BaseTime   string `form:"baseTime"`
	TimeOption string `form:"timeOption"`
	Interval   *int   `form:"interval"`
}

type option struct {
	Value string
	Label string
}

type intervalOption struct {
	Days  int
	Label string
}

type pageData struct {
	Posts      []content.Post
	BaseDate   string
	BaseTime   string
	Platforms  []option
	Tones      []option
	Intervals  []intervalOption
	TimeOption string
	Error      string
}

var intervals = []intervalOption{
	{Days: 1, Label: "Daily (1 day apart)"},
	{Days: 2, Label: "Every 2 days"},
	{Days: 3, Label: "Every 3 days"},
	{Days: 7, Label: "Weekly (7 days apart)"},
}

func (s *Server) page(posts []content.Post, baseDate, baseTime string) pageData {
	platforms := make([]option, 0, len(content.Platforms()))
	for _, p := range content.Platforms() {
		platforms = append(platforms, option{Value: string(p), Label: p.Label()})
	}

	tones := make([]option, 0, len(content.Tones()))
	for _, t := range content.Tones() {
		tones = append(tones, option{Value: string(t), Label: t.Label()})
	}

	return pageData{
		Posts:      posts,
		BaseDate:   baseDate,
		BaseTime:   baseTime,
		Platforms:  platforms,
		Tones:      tones,
		Intervals:  intervals,
		TimeOption: string(schedule.Same),
	}
}

func (s *Server) defaultPage(posts []content.Post) pageData {
	now := s.now().UTC()

	return s.page(posts, now.Format(schedule.DateLayout), schedule.DefaultTime(now))
}

// handleIndex renders the form and the session batch.
func (s *Server) handleIndex(c *gin.Context) {
	id := s.sessionID(c)

	posts, err := s.loadPosts(c, id)
	if err != nil {
		s.logger.Error("Failed to load session batch", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)

		return
	}

	c.HTML(http.StatusOK, "index.html", s.defaultPage(posts))
}

// handleSubmit dispatches between the edit round-trip and a new generation.
func (s *Server) handleSubmit(c *gin.Context) {
	if c.PostForm("edit") == "1" {
		s.handleEdit(c)

		return
	}

	s.handleGenerate(c)
}

func (s *Server) handleGenerate(c *gin.Context) {
	var form generateForm
	if err := c.ShouldBind(&form); err != nil {
		s.logger.Warn("Invalid generate form", "error", err)
		s.renderError(c, http.StatusBadRequest, "A topic is required and numbers must be numeric.")

		return
	}

	form.Topic = strings.TrimSpace(form.Topic)
	if form.Topic == "" {
		s.renderError(c, http.StatusBadRequest, "A topic is required.")

		return
	}

	platform, ok := content.ParsePlatform(form.Platform)
	if !ok {
		platform = content.General
	}

	tone, ok := content.ParseTone(form.Tone)
	if !ok {
		tone = content.Professional
	}

	opts := schedule.Options{
		BaseDate:     form.BaseDate,
		BaseTime:     form.BaseTime,
		Count:        clampCount(form.PostCount),
		Distribution: schedule.ParseDistribution(form.TimeOption),
		IntervalDays: schedule.MinIntervalDays,
	}
	// An empty interval field binds to 0; treat it as absent.
	if form.Interval != nil && strings.TrimSpace(c.PostForm("interval")) != "" {
		if *form.Interval < schedule.MinIntervalDays {
			s.renderError(c, http.StatusBadRequest, "The interval between posts must be at least one day.")

			return
		}
		opts.IntervalDays = *form.Interval
	}

	slots := schedule.Slots(opts, s.now().UTC())

	id := s.sessionID(c)
	posts := s.generator.GenerateBatch(c.Request.Context(), content.Batch{
		Topic:    form.Topic,
		Platform: platform,
		Tone:     tone,
		Slots:    slots,
	})

	s.logger.Info("Generated batch",
		"platform", platform,
		"tone", tone,
		"count", len(posts),
	)

	if err := s.store.Save(c.Request.Context(), id, posts); err != nil {
		s.logger.Error("Failed to save session batch", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)

		return
	}

	// Re-render the effective schedule, which differs from the submitted
	// values when they were blank or unparseable.
	data := s.page(posts, slots[0].Date, slots[0].Time)
	data.TimeOption = string(opts.Distribution)
	c.HTML(http.StatusOK, "index.html", data)
}

// handleEdit applies date_i, time_i, content_i and hashtags_i fields to the
// stored batch. Absent fields keep the stored value.
func (s *Server) handleEdit(c *gin.Context) {
	id := s.sessionID(c)

	posts, err := s.loadPosts(c, id)
	if err != nil {
		s.logger.Error("Failed to load session batch", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)

		return
	}

	for i := range posts {
		suffix := "_" + strconv.Itoa(i)
		if v, ok := c.GetPostForm("date" + suffix); ok {
			posts[i].Date = v
		}
		if v, ok := c.GetPostForm("time" + suffix); ok {
			posts[i].Time = v
		}
		if v, ok := c.GetPostForm("content" + suffix); ok {
			posts[i].Content = v
		}
		if v, ok := c.GetPostForm("hashtags" + suffix); ok {
			posts[i].Hashtags = v
		}
	}

	if posts != nil {
		if err := s.store.Save(c.Request.Context(), id, posts); err != nil {
			s.logger.Error("Failed to save session batch", "error", err)
			c.AbortWithStatus(http.StatusInternalServerError)

			return
		}
	}

	c.HTML(http.StatusOK, "index.html", s.defaultPage(posts))
}

// handleDownloadCSV exports the session batch, or redirects home when empty.
func (s *Server) handleDownloadCSV(c *gin.Context) {
	id := s.sessionID(c)

	posts, err := s.loadPosts(c, id)
	if err != nil {
		s.logger.Error("Failed to load session batch", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)

		return
	}

	if len(posts) == 0 {
		c.Redirect(http.StatusFound, "/")

		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, posts); err != nil {
		s.logger.Error("Failed to export batch", "error", err)
		c.AbortWithStatus(http.StatusInternalServerError)

		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(s.now())+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (s *Server) renderError(c *gin.Context, status int, msg string) {
	data := s.defaultPage(nil)
	data.Error = msg
	c.HTML(status, "index.html", data)
}

func clampCount(n *int) int {
	if n == nil {
		return MinPostCount
	}

	return min(max(*n, MinPostCount), MaxPostCount)
}
