package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// StubHandler serves the endpoints that ship fixture data instead of a
// real integration: the interview scheduler and the company search.
type StubHandler struct{}

// NewStubHandler constructs the handler.
func NewStubHandler() *StubHandler {
	return &StubHandler{}
}

// ListInterviews returns the static upcoming-interview fixtures.
func (h *StubHandler) ListInterviews(c *gin.Context) {
	interviews := []gin.H{
		{
			"id":          1,
			"company":     "Tech Innovations Inc.",
			"role":        "Senior Software Engineer",
			"date":        "2025-01-15",
			"type":        "Technical Interview",
			"interviewer": "John Smith",
			"questions":   "What projects have you worked on?",
			"notes":       "Focus on system design skills",
		},
		{
			"id":          2,
			"company":     "Global Solutions Ltd.",
			"role":        "Frontend Developer",
			"date":        "2025-01-18",
			"type":        "Behavioral Interview",
			"interviewer": "Sarah Johnson",
			"questions":   "Tell me about a challenging situation you faced",
			"notes":       "Emphasize teamwork examples",
		},
	}

	c.JSON(http.StatusOK, gin.H{"interviews": interviews})
}

type companySearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchCompanies returns fixture companies derived from the query text.
func (h *StubHandler) SearchCompanies(c *gin.Context) {
	var req companySearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	slug := strings.ToLower(strings.ReplaceAll(req.Query, " ", ""))
	results := []gin.H{
		{
			"name":          "TechCorp " + req.Query,
			"website":       "https://techcorp" + slug + ".com",
			"size":          "Large",
			"industry":      "Technology",
			"remote_policy": "Hybrid",
			"role":          req.Query + " Developer",
		},
		{
			"name":          "InnovateInc " + req.Query,
			"website":       "https://innovateinc" + slug + ".com",
			"size":          "Medium",
			"industry":      "Software",
			"remote_policy": "Remote",
			"role":          "Senior " + req.Query + " Engineer",
		},
		{
			"name":          "GlobalSystems " + req.Query,
			"website":       "https://globalsystems" + slug + ".com",
			"size":          "Large",
			"industry":      "Enterprise",
			"remote_policy": "On-site",
			"role":          "Lead " + req.Query + " Specialist",
		},
		{
			"name":          "FutureLabs " + req.Query,
			"website":       "https://futurelabs" + slug + ".com",
			"size":          "Small",
			"industry":      "Startups",
			"remote_policy": "Fully Remote",
			"role":          "Principal " + req.Query + " Architect",
		},
		{
			"name":          "DigitalSolutions " + req.Query,
			"website":       "https://digitalsolutions" + slug + ".com",
			"size":          "Medium",
			"industry":      "IT Services",
			"remote_policy": "Hybrid",
			"role":          "Staff " + req.Query + " Developer",
		},
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}
