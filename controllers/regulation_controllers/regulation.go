package regulation_controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zsmartex/passbook/controllers/entities"
	"github.com/zsmartex/passbook/controllers/helpers"
	"github.com/zsmartex/passbook/services/regulation_service"
)

type RegulationController struct {
	Service *regulation_service.RegulationService
}

func NewRegulationController(service *regulation_service.RegulationService) *RegulationController {
	return &RegulationController{Service: service}
}

func (h *RegulationController) GetRegulations(c *fiber.Ctx) error {
	regulation, err := h.Service.GetAllRegulations(c.UserContext())
	if err != nil {
		return helpers.ResponseError(c, err)
	}

	return c.Status(200).JSON(regulation)
}

func (h *RegulationController) UpdateRegulations(c *fiber.Ctx) error {
	payload := new(entities.UpdateRegulationsPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(422).JSON(helpers.Errors{
			Errors: []string{helpers.ServerInvalidBody},
		})
	}

	regulation, err := h.Service.UpdateRegulations(c.UserContext(), payload.Balance(), payload.MinimumTermDays)
	if err != nil {
		return helpers.ResponseError(c, err)
	}

	return c.Status(200).JSON(regulation)
}

func (h *RegulationController) GetRegulationRates(c *fiber.Ctx) error {
	rates, err := h.Service.GetRegulationRates(c.UserContext())
	if err != nil {
		return helpers.ResponseError(c, err)
	}

	return c.Status(200).JSON(rates)
}

func (h *RegulationController) UpdateRegulationRates(c *fiber.Ctx) error {
	var payload []entities.RegulationRateEntity
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(422).JSON(helpers.Errors{
				Errors: []string{helpers.ServerInvalidBody},
			})
		}
	}

	var errors = new(helpers.Errors)
	updates := make([]regulation_service.RateUpdate, 0, len(payload))
	for _, rate := range payload {
		helpers.Vaildate(&rate, errors)
		if rate.HasNegativeRate() {
			errors.Errors = append(errors.Errors, "rate must not be negative")
		}

		updates = append(updates, regulation_service.RateUpdate{
			TypeSavingID: rate.TypeSavingID,
			TypeName:     rate.TypeName,
			Rate:         rate.Rate,
			Term:         rate.Term,
		})
	}

	if errors.Size() > 0 {
		return c.Status(422).JSON(errors)
	}

	result, err := h.Service.UpdateRegulation(c.UserContext(), updates)
	if err != nil {
		return helpers.ResponseError(c, err)
	}

	return c.Status(200).JSON(result)
}
