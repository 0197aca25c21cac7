package server

import (
	goerrors "errors"
	"net/http"
	"strconv"

	"califica-tu-profe/domain/report"
	"califica-tu-profe/errors"
	"califica-tu-profe/services"

	"github.com/gin-gonic/gin"
)

type checkRequest struct {
	Content string `json:"content" binding:"required"`
}

// checkContent runs the moderation pipeline on one piece of text. Any
// internal fault surfaces as a blocked verdict: content never slips
// through on an error path.
func (s *Server) checkContent(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Moderation check panicked", "panic", r)
			s.monitor.RecordCheck(false, nil)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"allowed": false,
				"error":   "moderation unavailable",
			})
		}
	}()

	var request checkRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrEmptyContent.Error()})
		return
	}

	verdict := s.moderator.Moderate(c.Request.Context(), request.Content, identityFrom(c).ID)
	s.monitor.RecordCheck(verdict.Allowed, verdict.Reasons)

	c.JSON(http.StatusOK, verdict)
}

type analyzeRequest struct {
	Content string `json:"content" binding:"required"`
}

func (s *Server) analyzeReview(c *gin.Context) {
	var request analyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errors.ErrEmptyContent.Error()})
		return
	}

	c.JSON(http.StatusOK, s.analysis.Analyze(request.Content))
}

type submitReportRequest struct {
	ContentType    string `json:"contentType"`
	ContentID      string `json:"contentId"`
	Reason         string `json:"reason"`
	AdditionalInfo string `json:"additionalInfo"`
}

func (s *Server) submitReport(c *gin.Context) {
	var request submitReportRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	created, err := s.reports.Submit(services.SubmitReportRequest{
		ContentType:    request.ContentType,
		ContentID:      request.ContentID,
		Reason:         request.Reason,
		AdditionalInfo: request.AdditionalInfo,
		ReportedBy:     identityFrom(c).ID,
	})
	if err != nil {
		switch {
		case goerrors.Is(err, errors.ErrInvalidContentType),
			goerrors.Is(err, errors.ErrEmptyReason),
			goerrors.Is(err, errors.ErrMissingReporter):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			s.log.Error("Report submission failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "report submission failed"})
		}
		return
	}

	s.monitor.RecordReport()
	c.JSON(http.StatusCreated, created)
}

func (s *Server) listReports(c *gin.Context) {
	status := c.DefaultQuery("status", string(report.StatusPending))
	if status != string(report.StatusPending) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only status=pending is supported"})
		return
	}

	pending, err := s.reports.ListPending()
	if err != nil {
		s.log.Error("Pending report listing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report listing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": pending, "count": len(pending)})
}

type resolveRequest struct {
	Action string `json:"action" binding:"required"`
	Notes  string `json:"notes"`
}

func (s *Server) resolveReport(c *gin.Context) {
	var request resolveRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	err := s.reports.Resolve(c.Param("id"), report.Action(request.Action),
		identityFrom(c).ID, request.Notes)
	if err != nil {
		switch {
		case goerrors.Is(err, errors.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case goerrors.Is(err, errors.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			s.log.Error("Report resolution failed", "report_id", c.Param("id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "report resolution failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}

func (s *Server) unhideContent(c *gin.Context) {
	err := s.reports.Unhide(report.ContentType(c.Param("type")), c.Param("id"))
	if err != nil {
		switch {
		case goerrors.Is(err, errors.ErrInvalidContentType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case goerrors.Is(err, errors.ErrDocumentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			s.log.Error("Unhide failed", "content_id", c.Param("id"), "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "unhide failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "visible"})
}

// searchAudit lets administrators search the blocked-content index by
// excerpt or reason text.
func (s *Server) searchAudit(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return
	}

	entries, err := s.audit.Search(c.Request.Context(), query, limit)
	if err != nil {
		s.log.Error("Audit search failed", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "audit search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "count": len(entries)})
}

func (s *Server) stats(c *gin.Context) {
	c.JSON(http.StatusOK, s.monitor.Snapshot())
}
