package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"seminarhub/internal/delivery/http/helpers"
	"seminarhub/internal/domain"
)

// SeminarRequest is the request body for POST /seminars and PUT /seminars/{id}.
// An id member is accepted so clients can send back a fetched record, but it is
// always ignored: POST assigns a new id and PUT uses the path id.
type SeminarRequest struct {
	ID          *int64 `json:"id,omitempty" swaggerignore:"true"`
	Title       string `json:"title" example:"Intro to Go"`
	Description string `json:"description" example:"Types, interfaces and goroutines"`
	Date        string `json:"date" example:"2025-03-14"`
	Time        string `json:"time" example:"18:30"`
	Photo       string `json:"photo" example:"https://example.com/go.png"`
}

func (req SeminarRequest) toSeminar() *domain.Seminar {
	return domain.NewSeminar(req.Title, req.Description, req.Date, req.Time, req.Photo)
}

type SeminarController struct {
	Logger  *slog.Logger
	Service domain.SeminarService
}

func NewSeminarController(logger *slog.Logger, svc domain.SeminarService) *SeminarController {
	return &SeminarController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSeminars godoc
// @Summary List seminars
// @Description Returns every seminar in stored order. With query, only seminars whose title or description contains it (case-insensitive).
// @Tags seminars
// @Produce json
// @Param query query string false "Free-text filter over title and description"
// @Success 200 {array} domain.Seminar
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /seminars [get]
func (c *SeminarController) ListSeminars(w http.ResponseWriter, r *http.Request) {
	seminars, err := c.Service.ListSeminars(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		c.internalError(w, r, err, "failed to fetch seminars")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, seminars)
}

// CreateSeminar godoc
// @Summary Create a seminar
// @Description Appends a seminar. The id is assigned by the server as one more than the highest existing id; any id in the body is ignored.
// @Tags seminars
// @Accept json
// @Produce json
// @Param seminar body SeminarRequest true "Seminar data"
// @Success 201 {object} domain.Seminar
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /seminars [post]
func (c *SeminarController) CreateSeminar(w http.ResponseWriter, r *http.Request) {
	var req SeminarRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	seminar := req.toSeminar()
	if err := c.Service.CreateSeminar(r.Context(), seminar); err != nil {
		c.internalError(w, r, err, "failed to create seminar")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, seminar)
}

// GetSeminar godoc
// @Summary Get a seminar by ID
// @Tags seminars
// @Produce json
// @Param id path int true "Seminar ID"
// @Success 200 {object} domain.Seminar
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /seminars/{id} [get]
func (c *SeminarController) GetSeminar(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}
	seminar, err := c.Service.GetSeminar(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Seminar not found")
			return
		}
		c.internalError(w, r, err, "failed to fetch seminar")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, seminar)
}

// ReplaceSeminar godoc
// @Summary Replace a seminar
// @Description Overwrites the whole record. The stored id is always the path id.
// @Tags seminars
// @Accept json
// @Produce json
// @Param id path int true "Seminar ID"
// @Param seminar body SeminarRequest true "Full seminar data"
// @Success 200 {object} domain.Seminar
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /seminars/{id} [put]
func (c *SeminarController) ReplaceSeminar(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}
	var req SeminarRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	seminar := req.toSeminar()
	if err := c.Service.ReplaceSeminar(r.Context(), id, seminar); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Seminar not found")
			return
		}
		c.internalError(w, r, err, "failed to update seminar")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, seminar)
}

// DeleteSeminar godoc
// @Summary Delete a seminar
// @Tags seminars
// @Produce json
// @Param id path int true "Seminar ID"
// @Success 200 {object} helpers.DeleteResponse
// @Failure 400 {object} helpers.APIError "code: bad_request"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /seminars/{id} [delete]
func (c *SeminarController) DeleteSeminar(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteSeminar(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "Seminar not found")
			return
		}
		c.internalError(w, r, err, "failed to delete seminar")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.DeleteResponse{Success: true})
}

func (c *SeminarController) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := domain.ParseID(r.PathValue("id"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

// internalError logs err and answers 500 with a fixed message; store details stay in the log.
func (c *SeminarController) internalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, message)
}
