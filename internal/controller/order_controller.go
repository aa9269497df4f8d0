package controller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"circletel-admin-be/internal/dto"
	"circletel-admin-be/internal/pkg/serverutils"
	"circletel-admin-be/internal/service"
	"circletel-admin-be/pkg/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Actions(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	CompleteInstallation(ctx *fiber.Ctx) error
	ValidateActivation(ctx *fiber.Ctx) error
	Activate(ctx *fiber.Ctx) error
	UploadDocument(ctx *fiber.Ctx) error
}

type orderController struct {
	orderService      service.IOrderService
	activationService service.IActivationService
	uploadDir         string
}

func NewOrderController(orderService service.IOrderService, activationService service.IActivationService, uploadDir string) IOrderController {
	return &orderController{
		orderService:      orderService,
		activationService: activationService,
		uploadDir:         uploadDir,
	}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/orders")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Get(":id/status-actions", c.Actions)
	h.Get(":id/history", c.History)
	h.Get(":id/activation-validation", c.ValidateActivation)
	h.Patch(":id/status", c.UpdateStatus)
	h.Post(":id/complete-installation", c.CompleteInstallation)
	h.Post(":id/activate", c.Activate)
	h.Post(":id/upload-installation-document", c.UploadDocument)
}

func (c *orderController) List(ctx *fiber.Ctx) error {
	status := ctx.Query("status", "")
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	res, err := c.orderService.List(ctx.Context(), status, page, limit)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list orders", res))
}

func (c *orderController) Show(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.orderService.Show(ctx.Context(), id)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show order", res))
}

func (c *orderController) Actions(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.orderService.Actions(ctx.Context(), id)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list status actions", res))
}

func (c *orderController) History(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.orderService.History(ctx.Context(), id)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list status history", res))
}

func (c *orderController) UpdateStatus(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.StatusUpdateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.UpdateStatus(ctx.Context(), adminIdFromLocals(ctx), id, &req)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Order status updated", res))
}

// CompleteInstallation accepts multipart form data: optional notes and an
// optional installation document in the same submission.
func (c *orderController) CompleteInstallation(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	notes := ctx.FormValue("notes", "")

	var documentUrl *string
	if fh, err := ctx.FormFile("document"); err == nil && fh != nil {
		url, err := c.storeDocument(ctx, id, fh)
		if err != nil {
			return err
		}
		documentUrl = &url
	}

	res, err := c.orderService.CompleteInstallation(ctx.Context(), adminIdFromLocals(ctx), id, notes, documentUrl)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Installation completed", res))
}

func (c *orderController) ValidateActivation(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.activationService.Validate(ctx.Context(), id)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success validate activation", res))
}

func (c *orderController) Activate(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.ActivationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.activationService.Activate(ctx.Context(), adminIdFromLocals(ctx), id, &req)
	if err != nil {
		var blocked *service.ActivationBlockedError
		if errors.As(err, &blocked) {
			// Full validation payload so the modal can render every issue.
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   blocked.Error(),
				"data":    blocked.Validation,
			})
		}
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Service activated", res))
}

// UploadDocument attaches or replaces the installation document without
// changing the order status.
func (c *orderController) UploadDocument(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	fh, err := ctx.FormFile("document")
	if err != nil || fh == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Document file is required")
	}

	url, err := c.storeDocument(ctx, id, fh)
	if err != nil {
		return err
	}

	res, err := c.orderService.AttachDocument(ctx.Context(), adminIdFromLocals(ctx), id, url)
	if err != nil {
		return mapOrderError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Document uploaded", res))
}

// storeDocument validates and persists an uploaded installation document,
// returning the public URL. Validation runs before anything touches disk.
func (c *orderController) storeDocument(ctx *fiber.Ctx, orderId uuid.UUID, fh *multipart.FileHeader) (string, error) {
	if err := upload.ValidateDocument(fh); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	name := fmt.Sprintf("%s-%s%s", orderId, uuid.New().String()[:8], strings.ToLower(filepath.Ext(fh.Filename)))
	if err := ctx.SaveFile(fh, filepath.Join(c.uploadDir, name)); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Failed to store document")
	}
	return "/uploads/" + name, nil
}

func parseIdParam(ctx *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
	}
	return id, nil
}

func adminIdFromLocals(ctx *fiber.Ctx) uuid.UUID {
	if s, ok := ctx.Locals("admin_id").(string); ok {
		if id, err := uuid.Parse(s); err == nil {
			return id
		}
	}
	return uuid.Nil
}

// mapOrderError translates service-level failures into HTTP statuses.
func mapOrderError(err error) error {
	switch {
	case errors.Is(err, service.ErrOrderNotFound), errors.Is(err, service.ErrPaymentMethodNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConcurrentUpdate):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNotesRequired),
		errors.Is(err, service.ErrDateRequired),
		errors.Is(err, service.ErrUploadNotAllowed):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case strings.Contains(err.Error(), "is not allowed"),
		strings.Contains(err.Error(), "unknown order status"),
		strings.Contains(err.Error(), "invalid"):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return err
	}
}
