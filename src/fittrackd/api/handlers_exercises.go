package api

import (
	"net/http"

	"github.com/da-maltsev/fit-track/src/common/errors"
	"github.com/da-maltsev/fit-track/src/fittrackd/auth"
	"github.com/gin-gonic/gin"
)

// handleGetExercise retrieves one catalog exercise by id
//
//	@Summary		Get an exercise by id
//	@Tags			exercises
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Exercise id"
//	@Success		200	{object}	db.Exercise
//	@Failure		401	{object}	errors.Response
//	@Failure		404	{object}	errors.Response
//	@Router			/exercises/{id} [get]
func (a *API) handleGetExercise(c *gin.Context) {
	id, err := auth.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errors.ErrExerciseNotFound.ToResponse())
		return
	}

	exercise, err := a.exerciseRepo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}
	if exercise == nil {
		c.JSON(http.StatusNotFound,
			errors.ErrExerciseNotFound.WithMessagef("Exercise with id %d not found", id).ToResponse())
		return
	}

	c.JSON(http.StatusOK, exercise)
}

// handleListExercises lists catalog exercises, optionally filtered by a
// search term (matched against names and aliases) and a muscle group
//
//	@Summary		List exercises
//	@Tags			exercises
//	@Produce		json
//	@Security		BearerAuth
//	@Param			search			query		string	false	"Name or alias substring"
//	@Param			muscle_group	query		string	false	"Muscle group name"
//	@Success		200				{array}		db.Exercise
//	@Failure		401				{object}	errors.Response
//	@Router			/exercises [get]
func (a *API) handleListExercises(c *gin.Context) {
	search := c.Query("search")
	muscleGroup := c.Query("muscle_group")

	exercises, err := a.exerciseRepo.List(search, muscleGroup)
	if err != nil {
		if log != nil {
			log.Error("Failed to list exercises", "error", err)
		}
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}

	c.JSON(http.StatusOK, exercises)
}
