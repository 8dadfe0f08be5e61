package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"fittrack/internal/apperr"
	"fittrack/internal/domain"
	"fittrack/internal/query"
	"fittrack/internal/transport/http/middleware"
	"fittrack/internal/transport/http/response"
	"fittrack/internal/validation"
)

// CompletedHandler tracks per-user workout history. Every operation is
// scoped to the authenticated caller; one user can never see or touch
// another user's records.
type CompletedHandler struct {
	completed domain.CompletedExerciseRepository
	exercises domain.ExerciseRepository
}

func NewCompletedHandler(completed domain.CompletedExerciseRepository, exercises domain.ExerciseRepository) *CompletedHandler {
	return &CompletedHandler{completed: completed, exercises: exercises}
}

type createCompletedIn struct {
	ExerciseID  uint64     `json:"exerciseId" validate:"required,gte=1"`
	Duration    int        `json:"duration" validate:"required,gte=1"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (h *CompletedHandler) Create(c *gin.Context) {
	var in createCompletedIn
	if verr := validation.Body(c, &in); verr != nil {
		fail(c, verr)
		return
	}

	ctx := c.Request.Context()
	e, err := h.exercises.FindByID(ctx, in.ExerciseID)
	if err != nil {
		fail(c, apperr.Internal("create completed exercise", err))
		return
	}
	if e == nil {
		fail(c, apperr.NotFound("EXERCISE_NOT_FOUND"))
		return
	}

	completedAt := time.Now()
	if in.CompletedAt != nil {
		completedAt = *in.CompletedAt
	}
	rec := &domain.CompletedExercise{
		UserID:      middleware.CurrentUser(c).ID,
		ExerciseID:  in.ExerciseID,
		CompletedAt: completedAt,
		Duration:    in.Duration,
	}
	if err := h.completed.Create(ctx, rec); err != nil {
		fail(c, apperr.Internal("create completed exercise", err))
		return
	}
	response.OK(c, rec, msg(c, "COMPLETED_CREATED"))
}

func (h *CompletedHandler) List(c *gin.Context) {
	p := query.Parse(c.Request.URL.Query())

	items, total, err := h.completed.ListByOwner(c.Request.Context(), middleware.CurrentUser(c).ID, p)
	if err != nil {
		fail(c, apperr.Internal("list completed exercises", err))
		return
	}
	response.List(c, items, msg(c, "LIST_OF_COMPLETED"), response.NewMeta(total, p))
}

func (h *CompletedHandler) Delete(c *gin.Context) {
	ids, verr := validation.IDParams(c, "id")
	if verr != nil {
		fail(c, verr)
		return
	}

	ok, err := h.completed.DeleteByOwner(c.Request.Context(), ids[0], middleware.CurrentUser(c).ID)
	if err != nil {
		fail(c, apperr.Internal("delete completed exercise", err))
		return
	}
	if !ok {
		fail(c, apperr.NotFound("COMPLETED_NOT_FOUND"))
		return
	}
	response.OK(c, gin.H{"id": ids[0]}, msg(c, "COMPLETED_DELETED"))
}
