package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bilingual-todo/internal/model"
	"bilingual-todo/internal/store"
)

// The task handlers are the dispatch surface: each one pre-validates so
// clients get a meaningful status code, then dispatches the matching
// action. The reducer itself stays silently idempotent.

type titlePayload struct {
	Title model.Text `json:"title"`
}

type priorityPayload struct {
	Priority model.Priority `json:"priority"`
}

type languagePayload struct {
	Arabic bool `json:"arabic"`
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks := s.store.Tasks()

	switch c.DefaultQuery("filter", "all") {
	case "active":
		tasks = filterTasks(tasks, false)
	case "completed":
		tasks = filterTasks(tasks, true)
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleAddTask(c *gin.Context) {
	var payload titlePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !model.ValidTitle(payload.Title) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task title needs at least 3 characters in one language"})
		return
	}

	s.store.Dispatch(c.Request.Context(), store.Add{Title: payload.Title})
	c.JSON(http.StatusCreated, gin.H{"tasks": s.store.Tasks()})
}

func (s *Server) handleToggleTask(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.store.Find(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	s.store.Dispatch(c.Request.Context(), store.Check{ID: id})
	c.JSON(http.StatusOK, gin.H{"tasks": s.store.Tasks()})
}

func (s *Server) handleEditTask(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.store.Find(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	var payload titlePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if !model.ValidTitle(payload.Title) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task title needs at least 3 characters in one language"})
		return
	}

	s.store.Dispatch(c.Request.Context(), store.Edit{ID: id, Title: payload.Title})
	c.JSON(http.StatusOK, gin.H{"tasks": s.store.Tasks()})
}

func (s *Server) handlePrioritizeTask(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.store.Find(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	var payload priorityPayload
	if err := c.ShouldBindJSON(&payload); err != nil || !model.IsValidPriority(payload.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "priority must be high, medium or low"})
		return
	}

	s.store.Dispatch(c.Request.Context(), store.Prioritize{ID: id, Priority: payload.Priority})
	c.JSON(http.StatusOK, gin.H{"tasks": s.store.Tasks()})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.store.Find(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	s.store.Dispatch(c.Request.Context(), store.Delete{ID: id})
	c.JSON(http.StatusOK, gin.H{"tasks": s.store.Tasks()})
}

func (s *Server) handleGetLanguage(c *gin.Context) {
	arabic, err := s.langs.LoadLanguage(c.Request.Context())
	if err != nil {
		// Preference is cosmetic; default to English rather than fail.
		s.log.Warnw("load language preference", "error", err)
	}
	c.JSON(http.StatusOK, languagePayload{Arabic: arabic})
}

func (s *Server) handleSetLanguage(c *gin.Context) {
	var payload languagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := s.langs.SaveLanguage(c.Request.Context(), payload.Arabic); err != nil {
		s.log.Errorw("save language preference", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save language preference"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func filterTasks(tasks []model.Task, completed bool) []model.Task {
	filtered := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == completed {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
