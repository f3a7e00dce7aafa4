package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/importer"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/polish"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/service"
	"github.com/gin-gonic/gin"
)

const codeInvalidRequest = "INVALID_REQUEST"

type generateRequest struct {
	Type   domain.SessionType `json:"type"`
	Polish bool               `json:"polish"`
}

type adaptRequest struct {
	Type   domain.SessionType `json:"type" binding:"required"`
	Polish bool               `json:"polish"`
}

type scaleRequest struct {
	DistanceM int  `json:"distance_m"`
	Polish    bool `json:"polish"`
}

// planResponse carries a plan and, when asked for, its coaching.
type planResponse struct {
	Plan     *domain.SessionPlan  `json:"plan"`
	Coaching *polish.Coaching     `json:"coaching,omitempty"`
	Derived  []domain.SessionPlan `json:"derived,omitempty"`
}

type planHandler struct {
	plans service.PlanService
}

func (h *planHandler) generate(c *gin.Context) {
	var req generateRequest
	// An empty body, chunked or not, means defaults.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	plan, err := h.plans.Generate(c.Request.Context(), req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, plan, req.Polish)
}

func (h *planHandler) show(c *gin.Context) {
	plan, err := h.plans.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	derived, err := h.plans.Derived(c.Request.Context(), plan.Lineage.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, planResponse{Plan: plan, Derived: derived})
}

func (h *planHandler) latest(c *gin.Context) {
	plan, err := h.plans.Latest(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, plan, c.Query("polish") == "true")
}

func (h *planHandler) adapt(c *gin.Context) {
	var req adaptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	plan, err := h.plans.Adapt(c.Request.Context(), c.Param("id"), req.Type)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, plan, req.Polish)
}

func (h *planHandler) scale(c *gin.Context) {
	var req scaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	plan, err := h.plans.Scale(c.Request.Context(), c.Param("id"), req.DistanceM)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, plan, req.Polish)
}

func (h *planHandler) metrics(c *gin.Context) {
	report, err := h.plans.Metrics(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *planHandler) respond(c *gin.Context, status int, plan *domain.SessionPlan, withCoaching bool) {
	resp := planResponse{Plan: plan}
	if withCoaching {
		coaching, err := h.plans.Coach(c.Request.Context(), *plan)
		if err != nil {
			writeError(c, err)
			return
		}
		resp.Coaching = coaching
	}
	c.JSON(status, resp)
}

type sessionHandler struct {
	sessions service.SessionService
}

func (h *sessionHandler) log(c *gin.Context) {
	var s domain.TrainingSession
	if err := c.ShouldBindJSON(&s); err != nil {
		abortWithError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	s.ID = ""
	if err := h.sessions.Log(c.Request.Context(), &s); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *sessionHandler) list(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			abortWithError(c, http.StatusBadRequest, codeInvalidRequest, "days must be a non-negative integer")
			return
		}
		days = n
	}
	sessions, err := h.sessions.List(c.Request.Context(), days)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func (h *sessionHandler) remove(c *gin.Context) {
	if err := h.sessions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type profileHandler struct {
	profiles service.ProfileService
}

func (h *profileHandler) show(c *gin.Context) {
	p, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *profileHandler) save(c *gin.Context) {
	var p domain.AthleteProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		abortWithError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	if err := h.profiles.Save(c.Request.Context(), &p); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

type importHandler struct {
	imports service.ImportService
}

func (h *importHandler) create(c *gin.Context) {
	var schema importer.ImportSchema
	if err := c.ShouldBindJSON(&schema); err != nil {
		abortWithError(c, http.StatusBadRequest, codeInvalidRequest, err.Error())
		return
	}
	res, err := h.imports.Import(c.Request.Context(), &schema)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// writeError maps coded service errors onto 400/404 and hides the rest.
func writeError(c *gin.Context, err error) {
	var pe *service.PlanError
	if !errors.As(err, &pe) {
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "INTERNAL", "internal error")
		return
	}
	status := http.StatusBadRequest
	switch pe.Code {
	case service.CodePlanNotFound, service.CodeSessionNotFound, service.CodeProfileMissing:
		status = http.StatusNotFound
	}
	abortWithError(c, status, string(pe.Code), pe.Message)
}
