package report_controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/passbook/calendar"
	"github.com/zsmartex/passbook/controllers/helpers"
	"github.com/zsmartex/passbook/controllers/queries"
	"github.com/zsmartex/passbook/services/report_service"
)

type ReportController struct {
	Service *report_service.ReportService
}

func NewReportController(service *report_service.ReportService) *ReportController {
	return &ReportController{Service: service}
}

func parseDailyQueries(c *fiber.Ctx) (*queries.DailyReportQueries, *helpers.Errors) {
	var errors = new(helpers.Errors)
	params := new(queries.DailyReportQueries)

	if err := c.QueryParser(params); err != nil {
		errors.Errors = append(errors.Errors, helpers.ServerInvalidQuery)
		return nil, errors
	}

	helpers.Vaildate(params, errors)
	if errors.Size() > 0 {
		return nil, errors
	}

	if _, err := calendar.ParseDate(params.Date); err != nil {
		errors.Errors = append(errors.Errors, err.Error())
		return nil, errors
	}

	return params, nil
}

func (h *ReportController) GetDailyReport(c *fiber.Ctx) error {
	params, errors := parseDailyQueries(c)
	if errors != nil {
		return c.Status(422).JSON(errors)
	}

	report, err := h.Service.GetDailyReport(c.UserContext(), params.Date)
	if err != nil {
		return helpers.ResponseError(c, err)
	}

	return c.Status(200).JSON(report)
}

func (h *ReportController) GetDailyTransactionStatistics(c *fiber.Ctx) error {
	params, errors := parseDailyQueries(c)
	if errors != nil {
		return c.Status(422).JSON(errors)
	}

	statistics, err := h.Service.GetDailyTransactionStatistics(c.UserContext(), params.Date)
	if err != nil {
		return helpers.ResponseError(c, err)
	}

	return c.Status(200).JSON(statistics)
}

func (h *ReportController) GetMonthlyReport(c *fiber.Ctx) error {
	var errors = new(helpers.Errors)
	params := new(queries.MonthlyReportQueries)

	if err := c.QueryParser(params); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{helpers.ServerInvalidQuery},
		})
	}

	helpers.Vaildate(params, errors)
	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	report, err := h.Service.GetMonthlyReport(c.UserContext(), params.TypeSavingID, params.Month, params.Year)
	if err != nil {
		return helpers.ResponseError(c, err)
	}

	return c.Status(200).JSON(report)
}
