package controller

import (
	"circletel-admin-be/internal/pkg/serverutils"
	"circletel-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentMethodController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	ListByCustomer(ctx *fiber.Ctx) error
}

type paymentMethodController struct {
	paymentMethodService service.IPaymentMethodService
}

func NewPaymentMethodController(paymentMethodService service.IPaymentMethodService) IPaymentMethodController {
	return &paymentMethodController{
		paymentMethodService: paymentMethodService,
	}
}

func (c *paymentMethodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/payment-methods")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":id", c.Show)
	h.Get("customer/:customerId", c.ListByCustomer)
}

func (c *paymentMethodController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payment method id")
	}

	res, err := c.paymentMethodService.Show(ctx.Context(), id)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show payment method", res))
}

func (c *paymentMethodController) ListByCustomer(ctx *fiber.Ctx) error {
	customerId, err := uuid.Parse(ctx.Params("customerId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid customer id")
	}

	res, err := c.paymentMethodService.ListByCustomer(ctx.Context(), customerId)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list payment methods", res))
}
