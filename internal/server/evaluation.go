package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	evaluationdomain "github.com/strongfit/studio/internal/evaluation/domain"
)

func (s *Server) ListEvaluations(c *gin.Context) {
	var query struct {
		AthleteID string `form:"athlete_id"`
		Start     string `form:"start"`
		End       string `form:"end"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	start, err := parseOptionalDate(query.Start)
	if err != nil {
		AbortWithError(c, newValidationError("start", "invalid_start", "invalid start"))
		return
	}
	end, err := parseOptionalDate(query.End)
	if err != nil {
		AbortWithError(c, newValidationError("end", "invalid_end", "invalid end"))
		return
	}

	resp, err := s.evaluationSvc.List(c.Request.Context(), evaluationdomain.ListRequest{
		AthleteID: strings.TrimSpace(query.AthleteID),
		Start:     start,
		End:       end,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) CreateEvaluation(c *gin.Context) {
	var req evaluationdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id, err := s.evaluationSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"id": id.String()})
}

func (s *Server) UpdateEvaluation(c *gin.Context) {
	var req evaluationdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.evaluationSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"updated": true})
}

func (s *Server) DeleteEvaluation(c *gin.Context) {
	if err := s.evaluationSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
