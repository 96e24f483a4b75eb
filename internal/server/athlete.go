package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	athletedomain "github.com/strongfit/studio/internal/athlete/domain"
)

const athleteListCacheKey = "athletes:list"

func (s *Server) ListAthletes(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []athletedomain.Response
	if s.cache.Get(ctx, athleteListCacheKey, &cached) {
		respondData(c, cached)
		return
	}

	resp, err := s.athleteSvc.List(ctx)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.cache.Set(ctx, athleteListCacheKey, resp)
	respondData(c, resp)
}

func (s *Server) GetAthleteByID(c *gin.Context) {
	resp, err := s.athleteSvc.Get(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) CreateAthlete(c *gin.Context) {
	var req athletedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id, err := s.athleteSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.cache.Invalidate(c.Request.Context(), athleteListCacheKey)
	respondData(c, gin.H{"id": id.String()})
}

func (s *Server) UpdateAthlete(c *gin.Context) {
	var req athletedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.athleteSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req); err != nil {
		AbortWithError(c, err)
		return
	}

	s.cache.Invalidate(c.Request.Context(), athleteListCacheKey)
	respondData(c, gin.H{"updated": true})
}

func (s *Server) DeleteAthlete(c *gin.Context) {
	if err := s.athleteSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}

	s.cache.Invalidate(c.Request.Context(), athleteListCacheKey)
	respondData(c, gin.H{"deleted": true})
}
