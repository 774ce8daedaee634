package api

import (
	"net/http"

	"github.com/da-maltsev/fit-track/src/common/errors"
	"github.com/da-maltsev/fit-track/src/fittrackd/auth"
	"github.com/gin-gonic/gin"
)

// handleCreateTraining records a new training for the authenticated user
//
//	@Summary		Create a training
//	@Tags			trainings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			training	body		TrainingRequest	true	"Training details"
//	@Success		200			{object}	db.Training
//	@Failure		400			{object}	errors.Response
//	@Failure		401			{object}	errors.Response
//	@Router			/trainings [post]
func (a *API) handleCreateTraining(c *gin.Context) {
	user := auth.CurrentUser(c)

	var req TrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrValidationFailed.WithMessage(err.Error()).ToResponse())
		return
	}

	if err := a.checkEntries(req.Exercises); err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	training, err := a.trainingRepo.Create(user.ID, req.Date, entriesFromRequest(req.Exercises))
	if err != nil {
		if log != nil {
			log.Error("Failed to create training", "user_id", user.ID, "error", err)
		}
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}

	c.JSON(http.StatusOK, training)
}

// handleListTrainings lists the authenticated user's trainings, newest first
//
//	@Summary		List trainings
//	@Tags			trainings
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		db.Training
//	@Failure		401	{object}	errors.Response
//	@Router			/trainings [get]
func (a *API) handleListTrainings(c *gin.Context) {
	user := auth.CurrentUser(c)

	trainings, err := a.trainingRepo.ListForUser(user.ID)
	if err != nil {
		if log != nil {
			log.Error("Failed to list trainings", "user_id", user.ID, "error", err)
		}
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}

	c.JSON(http.StatusOK, trainings)
}

// handleGetTraining retrieves one of the authenticated user's trainings.
// A training owned by someone else returns the same 404 as a missing one.
//
//	@Summary		Get a training by id
//	@Tags			trainings
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Training id"
//	@Success		200	{object}	db.Training
//	@Failure		401	{object}	errors.Response
//	@Failure		404	{object}	errors.Response
//	@Router			/trainings/{id} [get]
func (a *API) handleGetTraining(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, err := auth.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errors.ErrTrainingNotFound.ToResponse())
		return
	}

	training, err := a.trainingRepo.GetByID(id, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}
	if training == nil {
		c.JSON(http.StatusNotFound, errors.ErrTrainingNotFound.ToResponse())
		return
	}

	c.JSON(http.StatusOK, training)
}

// handleUpdateTraining replaces a training's date and full exercise entry
// set with the request body
//
//	@Summary		Update a training
//	@Tags			trainings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		int				true	"Training id"
//	@Param			training	body		TrainingRequest	true	"New training details"
//	@Success		200			{object}	db.Training
//	@Failure		400			{object}	errors.Response
//	@Failure		401			{object}	errors.Response
//	@Failure		404			{object}	errors.Response
//	@Router			/trainings/{id} [put]
func (a *API) handleUpdateTraining(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, err := auth.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errors.ErrTrainingNotFound.ToResponse())
		return
	}

	var req TrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.ErrValidationFailed.WithMessage(err.Error()).ToResponse())
		return
	}

	if err := a.checkEntries(req.Exercises); err != nil {
		c.JSON(errors.GetHTTPStatus(err), errors.NewResponse(err))
		return
	}

	training, err := a.trainingRepo.Update(id, user.ID, req.Date, entriesFromRequest(req.Exercises))
	if err != nil {
		if log != nil {
			log.Error("Failed to update training", "training_id", id, "user_id", user.ID, "error", err)
		}
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}
	if training == nil {
		c.JSON(http.StatusNotFound, errors.ErrTrainingNotFound.ToResponse())
		return
	}

	c.JSON(http.StatusOK, training)
}

// handleDeleteTraining removes one of the authenticated user's trainings
//
//	@Summary		Delete a training
//	@Tags			trainings
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		int	true	"Training id"
//	@Success		200	{object}	MessageResponse
//	@Failure		401	{object}	errors.Response
//	@Failure		404	{object}	errors.Response
//	@Router			/trainings/{id} [delete]
func (a *API) handleDeleteTraining(c *gin.Context) {
	user := auth.CurrentUser(c)

	id, err := auth.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errors.ErrTrainingNotFound.ToResponse())
		return
	}

	deleted, err := a.trainingRepo.Delete(id, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errors.ErrInternal.ToResponse())
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, errors.ErrTrainingNotFound.ToResponse())
		return
	}

	if log != nil {
		log.Info("Training deleted", "training_id", id, "user_id", user.ID)
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Training deleted successfully"})
}

// checkEntries verifies that every referenced exercise exists in the catalog
func (a *API) checkEntries(entries []TrainingEntryRequest) error {
	for _, e := range entries {
		exercise, err := a.exerciseRepo.GetByID(e.ExerciseID)
		if err != nil {
			return errors.ErrInternal.WithCause(err)
		}
		if exercise == nil {
			return errors.ErrExerciseNotFound.WithMessagef("Exercise with id %d not found", e.ExerciseID)
		}
	}
	return nil
}
