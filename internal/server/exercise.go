package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	exercisedomain "github.com/strongfit/studio/internal/exercise/domain"
)

const exerciseListCacheKey = "exercises:list"

func (s *Server) ListExercises(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []exercisedomain.Response
	if s.cache.Get(ctx, exerciseListCacheKey, &cached) {
		respondData(c, cached)
		return
	}

	resp, err := s.exerciseSvc.List(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.cache.Set(ctx, exerciseListCacheKey, resp)
	respondData(c, resp)
}

func (s *Server) CreateExercise(c *gin.Context) {
	var req exercisedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id, err := s.exerciseSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.cache.Invalidate(c.Request.Context(), exerciseListCacheKey)
	respondData(c, gin.H{"id": id.String()})
}

func (s *Server) UpdateExercise(c *gin.Context) {
	var req exercisedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.exerciseSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req); err != nil {
		AbortWithError(c, err)
		return
	}

	s.cache.Invalidate(c.Request.Context(), exerciseListCacheKey)
	respondData(c, gin.H{"updated": true})
}

func (s *Server) DeleteExercise(c *gin.Context) {
	if err := s.exerciseSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	s.cache.Invalidate(c.Request.Context(), exerciseListCacheKey)
	respondData(c, gin.H{"deleted": true})
}
