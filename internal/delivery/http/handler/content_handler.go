package handler

import (
	"strings"

	"github.com/brainfeed/brainfeed-be/internal/delivery/http/domain"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/entity"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/usecase"
	"github.com/brainfeed/brainfeed-be/internal/pkg/response"
	"github.com/brainfeed/brainfeed-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ContentHandler interface {
		AddBook(ctx *fiber.Ctx) error
		AddVideo(ctx *fiber.Ctx) error
		ListBooks(ctx *fiber.Ctx) error
		ListVideos(ctx *fiber.Ctx) error
	}

	contentHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ContentUsecase
	}
)

func NewContentHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ContentUsecase) ContentHandler {
	return &contentHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /books
func (h *contentHandler) AddBook(ctx *fiber.Ctx) error {
	var req entity.AddBookRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.CONTENT_ADD_BOOK_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.AddBook(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.CONTENT_ADD_BOOK_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_ADD_BOOK_SUCCESS, result, nil).Send(ctx)
}

// POST /videos
func (h *contentHandler) AddVideo(ctx *fiber.Ctx) error {
	var req entity.AddVideoRequest

	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.CONTENT_ADD_VIDEO_FAILED, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.AddVideo(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.CONTENT_ADD_VIDEO_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_ADD_VIDEO_SUCCESS, result, nil).Send(ctx)
}

// GET /books?user_id=
func (h *contentHandler) ListBooks(ctx *fiber.Ctx) error {
	userID := strings.TrimSpace(ctx.Query("user_id"))
	if userID == "" {
		return response.NewFailed(domain.CONTENT_LIST_BOOKS_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	books, err := h.usecase.ListBooks(ctx.UserContext(), userID)
	if err != nil {
		return response.NewFailed(domain.CONTENT_LIST_BOOKS_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_LIST_BOOKS_SUCCESS, books, nil).Send(ctx)
}

// GET /videos?user_id=
func (h *contentHandler) ListVideos(ctx *fiber.Ctx) error {
	userID := strings.TrimSpace(ctx.Query("user_id"))
	if userID == "" {
		return response.NewFailed(domain.CONTENT_LIST_VIDEOS_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	videos, err := h.usecase.ListVideos(ctx.UserContext(), userID)
	if err != nil {
		return response.NewFailed(domain.CONTENT_LIST_VIDEOS_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.CONTENT_LIST_VIDEOS_SUCCESS, videos, nil).Send(ctx)
}
