package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"fittrack/internal/apperr"
	"fittrack/internal/core/cache"
	"fittrack/internal/domain"
	"fittrack/internal/query"
	"fittrack/internal/transport/http/response"
	"fittrack/internal/validation"
)

const programListTTL = 30 * time.Second

type ProgramHandler struct {
	programs  domain.ProgramRepository
	exercises domain.ExerciseRepository
	cache     *cache.Cache // optional
}

func NewProgramHandler(programs domain.ProgramRepository, exercises domain.ExerciseRepository, c *cache.Cache) *ProgramHandler {
	return &ProgramHandler{programs: programs, exercises: exercises, cache: c}
}

type programPage struct {
	Items []domain.Program `json:"items"`
	Total int64            `json:"total"`
}

// List is public. Pages are cached briefly in redis when a cache is
// wired; singleflight collapses concurrent misses for the same page.
func (h *ProgramHandler) List(c *gin.Context) {
	p := query.Parse(c.Request.URL.Query())
	ctx := c.Request.Context()

	load := func(ctx context.Context) (*programPage, error) {
		items, total, err := h.programs.List(ctx, p)
		if err != nil {
			return nil, err
		}
		return &programPage{Items: items, Total: total}, nil
	}

	var (
		page *programPage
		err  error
	)
	if h.cache != nil {
		key := fmt.Sprintf("programs:%d:%d:%s", p.Page, p.Limit, p.Search)
		page, err = cache.GetOrLoadJSON(h.cache, ctx, key, programListTTL, load)
	} else {
		page, err = load(ctx)
	}
	if err != nil {
		fail(c, apperr.Internal("list programs", err))
		return
	}
	response.List(c, page.Items, msg(c, "LIST_OF_PROGRAMS"), response.NewMeta(page.Total, p))
}

type createProgramIn struct {
	Name string `json:"name" validate:"required,min=2,max=200"`
}

func (h *ProgramHandler) Create(c *gin.Context) {
	var in createProgramIn
	if verr := validation.Body(c, &in); verr != nil {
		fail(c, verr)
		return
	}

	p := &domain.Program{Name: in.Name}
	if err := h.programs.Create(c.Request.Context(), p); err != nil {
		fail(c, apperr.Internal("create program", err))
		return
	}
	response.OK(c, gin.H{"id": p.ID}, msg(c, "PROGRAM_CREATED"))
}

// Assign links an exercise to a program. Re-assigning to the same
// program is a conflict; assigning an exercise already held by another
// program moves it.
func (h *ProgramHandler) Assign(c *gin.Context) {
	ids, verr := validation.IDParams(c, "programID", "exerciseID")
	if verr != nil {
		fail(c, verr)
		return
	}
	programID, exerciseID := ids[0], ids[1]
	ctx := c.Request.Context()

	program, err := h.programs.FindByID(ctx, programID)
	if err != nil {
		fail(c, apperr.Internal("assign exercise", err))
		return
	}
	if program == nil {
		fail(c, apperr.NotFound("PROGRAM_NOT_FOUND"))
		return
	}

	e, err := h.exercises.FindByID(ctx, exerciseID)
	if err != nil {
		fail(c, apperr.Internal("assign exercise", err))
		return
	}
	if e == nil {
		fail(c, apperr.NotFound("EXERCISE_NOT_FOUND"))
		return
	}
	if e.ProgramID != nil && *e.ProgramID == programID {
		fail(c, apperr.Conflict("EXERCISE_ALREADY_ASSIGNED"))
		return
	}

	if err := h.exercises.SetProgram(ctx, exerciseID, &programID); err != nil {
		fail(c, apperr.Internal("assign exercise", err))
		return
	}
	response.OK(c, gin.H{"id": exerciseID}, msg(c, "EXERCISE_ASSIGNED"))
}

// Unassign detaches an exercise, but only from the program it actually
// belongs to.
func (h *ProgramHandler) Unassign(c *gin.Context) {
	ids, verr := validation.IDParams(c, "programID", "exerciseID")
	if verr != nil {
		fail(c, verr)
		return
	}
	programID, exerciseID := ids[0], ids[1]
	ctx := c.Request.Context()

	e, err := h.exercises.FindByID(ctx, exerciseID)
	if err != nil {
		fail(c, apperr.Internal("unassign exercise", err))
		return
	}
	if e == nil || e.ProgramID == nil || *e.ProgramID != programID {
		fail(c, apperr.NotFound("EXERCISE_NOT_IN_PROGRAM"))
		return
	}

	if err := h.exercises.SetProgram(ctx, exerciseID, nil); err != nil {
		fail(c, apperr.Internal("unassign exercise", err))
		return
	}
	response.OK(c, gin.H{"id": exerciseID}, msg(c, "EXERCISE_UNASSIGNED"))
}
