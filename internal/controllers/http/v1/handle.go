package http

import (
	"bytes"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"weather-forecast/internal/models"
	"weather-forecast/internal/services/forecast"
	"weather-forecast/internal/services/input"
	"weather-forecast/internal/view"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"no location found for \"Zzqx\""`
}

// StateResponse is the current page together with the raw search state
type StateResponse struct {
	Page   view.Page         `json:"page"`
	Form   input.State       `json:"form"`
	Search forecast.Snapshot `json:"search"`
}

// DraftRequest carries the text currently typed into the search box
type DraftRequest struct {
	Text string `json:"text" example:"Berl"`
}

// SearchRequest optionally replaces the draft before committing it
type SearchRequest struct {
	Term *string `json:"term,omitempty" example:"Berlin"`
}

// SearchAccepted is returned when a search was started without waiting
type SearchAccepted struct {
	SearchID string `json:"search_id" example:"1f0c7f1e-8c1c-4c8e-9d0a-0d5b3f3f8a11"`
	Term     string `json:"term" example:"Berlin"`
}

// ForecastResponse is the outcome of a resolved search
type ForecastResponse struct {
	SearchID             string           `json:"search_id"`
	Term                 string           `json:"term" example:"Berlin"`
	Status               forecast.Status  `json:"status" example:"success"`
	Location             *models.Location `json:"location,omitempty"`
	LocationLine         string           `json:"location_line,omitempty" example:"Berlin (Germany)"`
	TimezoneAbbreviation string           `json:"timezone_abbreviation,omitempty" example:"CEST"`
	Days                 []view.DayCard   `json:"days"`
}

// IconResponse maps a weather code to its icon class
type IconResponse struct {
	Code  int         `json:"code" example:"61"`
	Icon  models.Icon `json:"icon" example:"light-rain"`
	Glyph string      `json:"glyph" example:"🌦"`
}

type forecastQuery struct {
	City string `validate:"required,min=2,max=100"`
}

func (r *routes) page() (view.Page, input.State, forecast.Snapshot) {
	snap := r.pipeline.Snapshot()
	form := r.controller.State()
	return view.Build(snap, form, r.now()), form, snap
}

// handleIndex renders the forecast page (HTML, or plain text with ?format=text)
func (r *routes) handleIndex(c *fiber.Ctx) error {
	page, _, _ := r.page()

	var buf bytes.Buffer
	if c.Query("format") == "text" {
		if err := view.RenderText(&buf, page); err != nil {
			return err
		}
		c.Type("txt", "utf-8")
		return c.Send(buf.Bytes())
	}

	if err := view.RenderHTML(&buf, page); err != nil {
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to render page")
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// handleSearchForm is the form post behind both the button and the Enter key
func (r *routes) handleSearchForm(c *fiber.Ctx) error {
	// a disabled input is not posted, the current draft is committed as is
	if err := r.controller.SetDraft(c.FormValue("city")); errors.Is(err, input.ErrInputDisabled) {
		r.l.Debug("form submitted while loading")
	}

	task := r.controller.Submit()
	r.l.Debug("search submitted from form", map[string]any{"search_id": task.ID, "term": task.Term})

	return c.Redirect("/", fiber.StatusSeeOther)
}

// GetState godoc
// @Summary Current page state
// @Description Returns the rendered page model, the search form state and the latest search snapshot
// @Tags Forecast
// @Produce json
// @Success 200 {object} StateResponse
// @Router /api/v1/state [get]
func (r *routes) handleState(c *fiber.Ctx) error {
	page, form, snap := r.page()
	return c.JSON(StateResponse{Page: page, Form: form, Search: snap})
}

// PutDraft godoc
// @Summary Update the draft search text
// @Description Rejected while a search is loading, the input is disabled then
// @Tags Forecast
// @Accept json
// @Produce json
// @Param request body DraftRequest true "Draft text"
// @Success 200 {object} input.State
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Search in progress"
// @Router /api/v1/draft [put]
func (r *routes) handleDraft(c *fiber.Ctx) error {
	var req DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body"})
	}

	if err := r.controller.SetDraft(req.Text); err != nil {
		return r.sendError(c, err)
	}

	return c.JSON(r.controller.State())
}

// PostSearch godoc
// @Summary Commit the draft and search
// @Description Starts a search for the committed term, superseding any search in flight.
// @Description With wait=true the call blocks until the search finishes.
// @Tags Forecast
// @Accept json
// @Produce json
// @Param request body SearchRequest false "Optional term replacing the draft"
// @Param wait query boolean false "Block until the search finishes"
// @Success 200 {object} ForecastResponse
// @Success 202 {object} SearchAccepted
// @Failure 404 {object} ErrorResponse "No location found"
// @Failure 409 {object} ErrorResponse "Input disabled or search superseded"
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Router /api/v1/search [post]
func (r *routes) handleSearch(c *fiber.Ctx) error {
	var req SearchRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid request body"})
		}
	}

	if req.Term != nil {
		if err := r.controller.SetDraft(*req.Term); err != nil {
			return r.sendError(c, err)
		}
	}

	task := r.controller.Submit()

	if !c.QueryBool("wait") {
		return c.Status(fiber.StatusAccepted).JSON(SearchAccepted{SearchID: task.ID, Term: task.Term})
	}

	res, err := task.Wait(c.Context())
	if err != nil {
		return r.sendError(c, err)
	}

	return c.JSON(r.forecastResponse(res))
}

// GetForecast godoc
// @Summary Get weather forecast for a city
// @Description Resolves the city with the geocoding service and returns the daily forecast of the first candidate.
// @Description Does not change the page state.
// @Tags Forecast
// @Produce json
// @Param city query string true "City name (at least 2 characters)" example(Berlin)
// @Success 200 {object} ForecastResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No location found"
// @Failure 502 {object} ErrorResponse "Upstream failure"
// @Router /api/v1/forecast [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/api/v1/forecast?city=Berlin"
func (r *routes) handleForecast(c *fiber.Ctx) error {
	q := forecastQuery{City: c.Query("city")}
	if err := r.validate.Struct(q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Parameter city is required and must be 2 to 100 characters",
		})
	}

	res, err := r.pipeline.Lookup(c.Context(), q.City)
	if err != nil {
		return r.sendError(c, err)
	}

	return c.JSON(r.forecastResponse(res))
}

// GetIcon godoc
// @Summary Icon class for a weather code
// @Tags Forecast
// @Produce json
// @Param code path integer true "WMO weather code" example(61)
// @Success 200 {object} IconResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/icons/{code} [get]
func (r *routes) handleIcon(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("code"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Invalid weather code"})
	}

	icon := models.IconFor(code)
	return c.JSON(IconResponse{Code: code, Icon: icon, Glyph: icon.Glyph()})
}

func (r *routes) forecastResponse(res forecast.Result) ForecastResponse {
	resp := ForecastResponse{
		SearchID:             res.SearchID,
		Term:                 res.Term,
		Status:               res.Status,
		Location:             res.Location,
		TimezoneAbbreviation: res.Forecast.TimezoneAbbreviation,
		Days:                 []view.DayCard{},
	}
	if res.Location != nil {
		resp.LocationLine = res.Location.DisplayName()
		today := view.LocalNow(res.Location.Timezone, r.now()).Weekday()
		resp.Days = view.DayCards(res.Forecast.Days, today)
	}
	return resp
}

func (r *routes) sendError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, input.ErrInputDisabled):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, forecast.ErrCanceled):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: "Search was superseded by a newer search"})
	case errors.Is(err, forecast.ErrEmptyResult):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	default:
		r.l.Error(err)
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{Error: "Failed to fetch weather data"})
	}
}
