package handler

import (
	"github.com/gin-gonic/gin"

	"fittrack/internal/apperr"
	"fittrack/internal/domain"
	"fittrack/internal/query"
	"fittrack/internal/transport/http/response"
	"fittrack/internal/validation"
)

type ExerciseHandler struct {
	exercises domain.ExerciseRepository
	programs  domain.ProgramRepository
}

func NewExerciseHandler(exercises domain.ExerciseRepository, programs domain.ProgramRepository) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises, programs: programs}
}

// List is public: paginated, name-searchable, optionally filtered by
// programID, with the owning program preloaded.
func (h *ExerciseHandler) List(c *gin.Context) {
	p := query.Parse(c.Request.URL.Query())

	exercises, total, err := h.exercises.List(c.Request.Context(), p)
	if err != nil {
		fail(c, apperr.Internal("list exercises", err))
		return
	}
	response.List(c, exercises, msg(c, "LIST_OF_EXERCISES"), response.NewMeta(total, p))
}

type createExerciseIn struct {
	Name       string `json:"name" validate:"required,min=2,max=200"`
	Difficulty string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	ProgramID  uint64 `json:"programID" validate:"required,gte=1"`
}

// Create inserts an exercise into an existing program. The referenced
// program must exist; row ids are never taken from the client.
func (h *ExerciseHandler) Create(c *gin.Context) {
	var in createExerciseIn
	if verr := validation.Body(c, &in); verr != nil {
		fail(c, verr)
		return
	}

	ctx := c.Request.Context()
	program, err := h.programs.FindByID(ctx, in.ProgramID)
	if err != nil {
		fail(c, apperr.Internal("create exercise", err))
		return
	}
	if program == nil {
		fail(c, apperr.NotFound("PROGRAM_NOT_FOUND"))
		return
	}

	e := &domain.Exercise{Name: in.Name, Difficulty: in.Difficulty, ProgramID: &in.ProgramID}
	if err := h.exercises.Create(ctx, e); err != nil {
		fail(c, apperr.Internal("create exercise", err))
		return
	}
	response.OK(c, gin.H{"id": e.ID}, msg(c, "EXERCISE_CREATED"))
}

type updateExerciseIn struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=200"`
	Difficulty *string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	ProgramID  *uint64 `json:"programID" validate:"omitempty,gte=1"`
}

func (h *ExerciseHandler) Update(c *gin.Context) {
	var in updateExerciseIn
	if verr := validation.Body(c, &in); verr != nil {
		fail(c, verr)
		return
	}
	if in.Name == nil && in.Difficulty == nil && in.ProgramID == nil {
		fail(c, apperr.Validation("body", []string{"at least one field must be provided"}))
		return
	}
	ids, verr := validation.IDParams(c, "id")
	if verr != nil {
		fail(c, verr)
		return
	}

	ctx := c.Request.Context()
	e, err := h.exercises.FindByID(ctx, ids[0])
	if err != nil {
		fail(c, apperr.Internal("update exercise", err))
		return
	}
	if e == nil {
		fail(c, apperr.NotFound("EXERCISE_NOT_FOUND"))
		return
	}

	if in.Name != nil {
		e.Name = *in.Name
	}
	if in.Difficulty != nil {
		e.Difficulty = *in.Difficulty
	}
	if in.ProgramID != nil {
		// moving to another program implicitly detaches from the old one
		e.ProgramID = in.ProgramID
		e.Program = nil
	}
	if err := h.exercises.Update(ctx, e); err != nil {
		fail(c, apperr.Internal("update exercise", err))
		return
	}
	response.OK(c, gin.H{"id": e.ID}, msg(c, "EXERCISE_UPDATED"))
}

func (h *ExerciseHandler) Delete(c *gin.Context) {
	ids, verr := validation.IDParams(c, "id")
	if verr != nil {
		fail(c, verr)
		return
	}

	ok, err := h.exercises.Delete(c.Request.Context(), ids[0])
	if err != nil {
		fail(c, apperr.Internal("delete exercise", err))
		return
	}
	if !ok {
		fail(c, apperr.NotFound("EXERCISE_NOT_FOUND"))
		return
	}
	response.OK(c, gin.H{"id": ids[0]}, msg(c, "EXERCISE_DELETED"))
}
