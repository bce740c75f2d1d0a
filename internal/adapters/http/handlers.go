package httpadapter

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/chischaschos/sudoku/internal/adapters/ws"
	"github.com/chischaschos/sudoku/internal/domain"
	"github.com/chischaschos/sudoku/internal/solver"
	"github.com/chischaschos/sudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(e *gin.Engine) {
	v1 := e.Group("/api").
		Group("/v1")
	v1.POST("/solve", h.solve)
	v1.POST("/validate", h.validate)
	v1.GET("/records", h.list)
	v1.GET("/records/:id", h.load)
	v1.GET("/records/:id/replay", h.replay)
}

func parseVariant(s string) domain.Variant {
	if strings.EqualFold(strings.TrimSpace(s), "diagonal") {
		return domain.Diagonal
	}
	return domain.Classic
}

// ---- Solve ----

type solveReq struct {
	Grid    string `json:"grid" binding:"required"`
	Variant string `json:"variant,omitempty"`
	Save    bool   `json:"save,omitempty"`
	Name    string `json:"name,omitempty"`
}

type solveResp struct {
	ID         string `json:"id"`
	Solution   string `json:"solution"`
	Variant    string `json:"variant"`
	Nodes      int    `json:"nodes"`
	DurationMs int64  `json:"durationMs"`
	Steps      int    `json:"steps"`
	Saved      bool   `json:"saved"`
}

func (h *Handler) solve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}
	v := parseVariant(req.Variant)
	rec, st, err := h.UC.Solve(c.Request.Context(), req.Grid, v)
	if errors.Is(err, solver.ErrUnsolvable) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no solution exists", "nodes": st.Nodes})
		return
	}
	if err != nil {
		log.Err(err).Str("variant", v.String()).Msg("solve grid")
		c.JSON(http.StatusBadRequest, gin.H{"error": "solve failed", "message": err.Error()})
		return
	}
	rec.Name = req.Name
	if req.Save {
		if err := h.UC.Save(c.Request.Context(), rec); err != nil {
			log.Err(err).Str("id", rec.ID).Msg("save solve record")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed", "message": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, solveResp{
		ID:         rec.ID,
		Solution:   rec.Solution,
		Variant:    v.String(),
		Nodes:      rec.Nodes,
		DurationMs: rec.DurationMs,
		Steps:      len(rec.Steps),
		Saved:      req.Save,
	})
}

// ---- Validate ----

type validateReq struct {
	Grid    string `json:"grid" binding:"required"`
	Variant string `json:"variant,omitempty"`
}

type validateResp struct {
	OK        bool          `json:"ok"`
	Conflicts []domain.Cell `json:"conflicts,omitempty"`
}

func (h *Handler) validate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "message": err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), req.Grid, parseVariant(req.Variant))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validate failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Records ----

func (h *Handler) list(c *gin.Context) {
	metas, err := h.UC.List(c.Request.Context())
	if err != nil {
		log.Err(err).Msg("list solve records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": metas})
}

func (h *Handler) load(c *gin.Context) {
	rec, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) replay(c *gin.Context) {
	rec, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "record not found", "message": err.Error()})
		return
	}
	ws.Replay(c.Writer, c.Request, rec.Steps)
}
