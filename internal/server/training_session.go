package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	sessiondomain "github.com/strongfit/studio/internal/trainingsession/domain"
)

func (s *Server) ListTrainingSessions(c *gin.Context) {
	var query struct {
		Start     string `form:"start"`
		End       string `form:"end"`
		AthleteID string `form:"athlete_id"`
		Status    string `form:"status"`
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

	resp, err := s.sessionSvc.List(c.Request.Context(), sessiondomain.ListRequest{
		Start:     start,
		End:       end,
		AthleteID: strings.TrimSpace(query.AthleteID),
		Status:    strings.TrimSpace(query.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, resp)
}

func (s *Server) CreateTrainingSession(c *gin.Context) {
	var req sessiondomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	id, err := s.sessionSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"id": id.String()})
}

func (s *Server) UpdateTrainingSession(c *gin.Context) {
	var req sessiondomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.sessionSvc.Update(c.Request.Context(), strings.TrimSpace(c.Param("id")), req); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"updated": true})
}

func (s *Server) CompleteTrainingSession(c *gin.Context) {
	var req struct {
		CompletedData map[string]any `json:"completed_data"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.sessionSvc.Complete(c.Request.Context(), strings.TrimSpace(c.Param("id")), req.CompletedData); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"completed": true})
}

func (s *Server) DeleteTrainingSession(c *gin.Context) {
	if err := s.sessionSvc.Delete(c.Request.Context(), strings.TrimSpace(c.Param("id"))); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": true})
}
