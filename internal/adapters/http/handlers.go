// Package httpadapter exposes the service as a JSON API. Grids travel as
// flat 81-element arrays, row-major, 0 for empty.
package httpadapter

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"svw.info/dlxsudoku/internal/dlx"
	"svw.info/dlxsudoku/internal/domain"
	"svw.info/dlxsudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// Register mounts the API routes on r.
func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/generate", h.generate)
	api.POST("/solve", h.solve)
	api.POST("/validate", h.validate)
	api.POST("/save", h.save)
	api.POST("/load", h.load)
	api.GET("/list", h.list)
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Puzzle     *domain.Puzzle `json:"puzzle,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	Difficulty string         `json:"difficulty,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Nodes      int            `json:"nodes,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(c.Request.Context(), seed, diff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, generateResp{
		Puzzle:     p,
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Solve ----

type solveReq struct {
	Grid domain.Grid `json:"grid"`
}

type solveResp struct {
	Grid       *domain.Grid `json:"grid,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) solve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	out, st, err := h.UC.Solve(c.Request.Context(), req.Grid)
	if err != nil {
		status := http.StatusInternalServerError
		var conflict *dlx.ConflictError
		switch {
		case errors.As(err, &conflict), errors.Is(err, dlx.ErrInfeasible),
			errors.Is(err, domain.ErrValueRange):
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	c.JSON(http.StatusOK, solveResp{Grid: &out, DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
}

// ---- Validate ----

type validateReq struct {
	Grid domain.Grid `json:"grid"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) validate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), req.Grid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, saveResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, saveResp{ID: p.ID})
}

type loadReq struct {
	ID string `json:"id"`
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) load(c *gin.Context) {
	var req loadReq
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.JSON(http.StatusBadRequest, loadResp{Error: "invalid JSON or missing id"})
		return
	}
	p, err := h.UC.Load(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, loadResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) list(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, listResp{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, listResp{Puzzles: ps})
}
