package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/frholidays/internal/dates"
	"github.com/guttosm/frholidays/internal/domain/dto"
	"github.com/guttosm/frholidays/internal/holiday"
	"github.com/guttosm/frholidays/internal/middleware"
	"github.com/guttosm/frholidays/internal/service"
)

// Handler provides HTTP handlers for the holiday endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Delegate to the holiday service
//   - Translate service results into response DTOs
//   - Map domain errors to HTTP status codes
type Handler struct {
	svc service.HolidayService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.HolidayService) *Handler {
	return &Handler{svc: svc}
}

// GetHolidays godoc
// @Summary      List bank holidays of a year
// @Description  Returns every French bank holiday observed in the year, in chronological order. Defaults to the current year.
// @Tags         holidays
// @Produce      json
// @Param        year  query     int  false  "Year" example(2021)
// @Success      200   {object}  dto.YearResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse "Bad Request"
// @Router       /api/v1/holidays [get]
func (h *Handler) GetHolidays(c *gin.Context) {
	year, ok := yearParam(c, "year")
	if !ok {
		return
	}

	out, err := h.svc.ForYear(c.Request.Context(), year)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewYearResponse(out))
}

// GetHolidayRange godoc
// @Summary      List bank holidays of several years
// @Description  Returns the holidays of every year in [from, to]; at most 200 years.
// @Tags         holidays
// @Produce      json
// @Param        from  query     int  true  "First year" example(2020)
// @Param        to    query     int  true  "Last year"  example(2022)
// @Success      200   {object}  dto.RangeResponse "Success"
// @Failure      400   {object}  dto.ErrorResponse "Bad Request"
// @Router       /api/v1/holidays/range [get]
func (h *Handler) GetHolidayRange(c *gin.Context) {
	from, ok := yearParam(c, "from")
	if !ok {
		return
	}
	to, ok := yearParam(c, "to")
	if !ok {
		return
	}
	if from == nil || to == nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("from and to are required", nil))
		return
	}

	years, err := h.svc.ForRange(c.Request.Context(), *from, *to)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp := dto.RangeResponse{From: *from, To: *to, Years: make([]dto.YearResponse, len(years))}
	for i, y := range years {
		resp.Years[i] = dto.NewYearResponse(y)
	}
	c.JSON(http.StatusOK, resp)
}

// CheckHoliday godoc
// @Summary      Is a date a bank holiday?
// @Description  Accepts YYYY-MM-DD, a bare YYYY (January 1) or an RFC 3339 timestamp, normalised to the configured timezone. Defaults to today.
// @Tags         holidays
// @Produce      json
// @Param        date  query     string  false  "Date" example(2021-05-08)
// @Success      200   {object}  dto.CheckResponse "Success"
// @Failure      400   {object}  dto.ErrorResponse "Bad Request"
// @Router       /api/v1/holidays/check [get]
func (h *Handler) CheckHoliday(c *gin.Context) {
	out, err := h.svc.Check(c.Request.Context(), strings.TrimSpace(c.Query("date")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckResponse{Date: out.Date, IsHoliday: out.IsHoliday, Holiday: out.Holiday})
}

// GetNamedHoliday godoc
// @Summary      Date of one holiday
// @Description  Returns the date a catalog holiday falls on in the year and whether it was observed that year.
// @Tags         holidays
// @Produce      json
// @Param        key   path      string  true   "Holiday key" example(whit-monday)
// @Param        year  query     int     false  "Year"        example(2021)
// @Success      200   {object}  models.NamedHoliday "Success"
// @Failure      400   {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse   "Unknown holiday"
// @Router       /api/v1/holidays/{key} [get]
func (h *Handler) GetNamedHoliday(c *gin.Context) {
	year, ok := yearParam(c, "year")
	if !ok {
		return
	}
	out, err := h.svc.Named(c.Request.Context(), strings.ToLower(c.Param("key")), year)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetEaster godoc
// @Summary      Easter Sunday
// @Tags         holidays
// @Produce      json
// @Param        year  query     int  false  "Year" example(2021)
// @Success      200   {object}  dto.EasterResponse "Success"
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/easter [get]
func (h *Handler) GetEaster(c *gin.Context) {
	year, ok := yearParam(c, "year")
	if !ok {
		return
	}
	d, err := h.svc.Easter(c.Request.Context(), year)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.EasterResponse{Year: d.Year, Date: dates.Format(d)})
}

// GetBusinessDays godoc
// @Summary      Last N business days
// @Description  Business days (Mon-Fri, not a bank holiday) ending at "from" inclusive, most recent first.
// @Tags         business-days
// @Produce      json
// @Param        from  query     string  false  "End date, default today" example(2021-05-15)
// @Param        n     query     int     false  "How many (1-31), default 5" example(5)
// @Success      200   {object}  dto.BusinessDaysResponse "Success"
// @Failure      400   {object}  dto.ErrorResponse        "Bad Request"
// @Router       /api/v1/business-days [get]
func (h *Handler) GetBusinessDays(c *gin.Context) {
	n := 5
	if s := c.Query("n"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid n, expected an integer", err))
			return
		}
		n = v
	}

	days, err := h.svc.LastBusinessDays(c.Request.Context(), strings.TrimSpace(c.Query("from")), n)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BusinessDaysResponse{From: c.Query("from"), Days: dates.FormatAll(days)})
}

// GetNextBusinessDay godoc
// @Summary      Next business day
// @Tags         business-days
// @Produce      json
// @Param        from  query     string  false  "Start date (exclusive), default today" example(2021-05-12)
// @Success      200   {object}  dto.BusinessDaysResponse "Success"
// @Failure      400   {object}  dto.ErrorResponse        "Bad Request"
// @Router       /api/v1/business-days/next [get]
func (h *Handler) GetNextBusinessDay(c *gin.Context) {
	d, err := h.svc.NextBusinessDay(c.Request.Context(), strings.TrimSpace(c.Query("from")))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BusinessDaysResponse{From: c.Query("from"), Days: []string{dates.Format(d)}})
}

// AddBusinessDays godoc
// @Summary      Move N business days
// @Description  Moves n business days from "from" (backwards when n is negative) and lists the weekday holidays skipped.
// @Tags         business-days
// @Produce      json
// @Param        from  query     string  false  "Start date, default today"   example(2021-05-12)
// @Param        n     query     int     true   "Business days, -260 to 260" example(2)
// @Success      200   {object}  models.BusinessShift "Success"
// @Failure      400   {object}  dto.ErrorResponse    "Bad Request"
// @Router       /api/v1/business-days/add [get]
func (h *Handler) AddBusinessDays(c *gin.Context) {
	n, err := strconv.Atoi(c.Query("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid n, expected an integer", err))
		return
	}

	out, err := h.svc.AddBusinessDays(c.Request.Context(), strings.TrimSpace(c.Query("from")), n)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// fail maps service errors to status codes.
func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dates.ErrInvalidDateInput):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid date", err)
	case errors.Is(err, service.ErrInvalidRange):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid range", err)
	case errors.Is(err, service.ErrUnknownHoliday):
		middleware.AbortWithError(c, http.StatusNotFound, "unknown holiday", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to compute holidays", err)
	}
}

// yearParam reads an optional year query parameter. Any integer is a valid
// year. On a malformed value it writes a 400 response and returns ok=false.
func yearParam(c *gin.Context, name string) (*int, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	y, err := dates.ParseYear(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid "+name+", expected an integer year", err))
		return nil, false
	}
	return &y, true
}

// GetCatalog godoc
// @Summary      Holiday catalog
// @Description  Every holiday rule known to the engine, in catalog order.
// @Tags         holidays
// @Produce      json
// @Success      200  {array}  dto.CatalogEntry "Success"
// @Router       /api/v1/catalog [get]
func (h *Handler) GetCatalog(c *gin.Context) {
	rules := holiday.Catalog()
	out := make([]dto.CatalogEntry, len(rules))
	for i, r := range rules {
		out[i] = dto.CatalogEntry{
			Key:          string(r.Key()),
			Name:         r.Name(),
			FrenchName:   r.FrenchName(),
			Movable:      r.Movable(),
			EasterOffset: r.EasterOffset(),
		}
	}
	c.JSON(http.StatusOK, out)
}
