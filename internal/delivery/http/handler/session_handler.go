package handler

import (
	"errors"

	"github.com/brainfeed/brainfeed-be/internal/delivery/http/domain"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/entity"
	"github.com/brainfeed/brainfeed-be/internal/delivery/http/usecase"
	"github.com/brainfeed/brainfeed-be/internal/pkg/response"
	"github.com/brainfeed/brainfeed-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	SessionHandler interface {
		ComposeFeed(ctx *fiber.Ctx) error
		CurrentItem(ctx *fiber.Ctx) error
		SubmitAnswer(ctx *fiber.Ctx) error
		Advance(ctx *fiber.Ctx) error
		Stats(ctx *fiber.Ctx) error
		EndSession(ctx *fiber.Ctx) error
	}

	sessionHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		engine    usecase.SessionEngine
	}
)

func NewSessionHandler(validator *validate.Validator, logger *logrus.Logger, engine usecase.SessionEngine) SessionHandler {
	return &sessionHandler{
		validator: validator,
		logger:    logger,
		engine:    engine,
	}
}

// GET /feed/:user_id  dan POST /feed/:user_id/shuffle
func (h *sessionHandler) ComposeFeed(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.FEED_COMPOSE_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	summary, err := h.engine.ComposeFeed(ctx.UserContext(), userID)
	if err != nil {
		// Feed kosong bukan error: UI menampilkan empty state.
		if errors.Is(err, usecase.ErrEmptyFeed) {
			return response.NewSuccess(domain.FEED_COMPOSE_SUCCESS, summary, nil).Send(ctx)
		}
		return response.NewFailed(domain.FEED_COMPOSE_FAILED, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.FEED_COMPOSE_SUCCESS, summary, nil).Send(ctx)
}

// GET /feed/:user_id/current
func (h *sessionHandler) CurrentItem(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.FEED_CURRENT_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	item, err := h.engine.CurrentItem(userID)
	if err != nil {
		return h.sendEngineError(ctx, domain.FEED_CURRENT_FAILED, err)
	}

	return response.NewSuccess(domain.FEED_CURRENT_SUCCESS, item, nil).Send(ctx)
}

// POST /feed/:user_id/answer
func (h *sessionHandler) SubmitAnswer(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.FEED_ANSWER_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	var req entity.SubmitResponseRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.FEED_ANSWER_FAILED, err, h.logger).Send(ctx)
	}

	outcome, err := h.engine.SubmitAnswer(userID, req.Response)
	if err != nil {
		return h.sendEngineError(ctx, domain.FEED_ANSWER_FAILED, err)
	}

	return response.NewSuccess(domain.FEED_ANSWER_SUCCESS, outcome, nil).Send(ctx)
}

// POST /feed/:user_id/advance
func (h *sessionHandler) Advance(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.FEED_ADVANCE_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	stats, err := h.engine.Advance(userID)
	if err != nil {
		return h.sendEngineError(ctx, domain.FEED_ADVANCE_FAILED, err)
	}

	return response.NewSuccess(domain.FEED_ADVANCE_SUCCESS, stats, nil).Send(ctx)
}

// GET /feed/:user_id/stats
func (h *sessionHandler) Stats(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.FEED_STATS_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	stats, err := h.engine.Stats(userID)
	if err != nil {
		return h.sendEngineError(ctx, domain.FEED_STATS_FAILED, err)
	}

	return response.NewSuccess(domain.FEED_STATS_SUCCESS, stats, nil).Send(ctx)
}

// DELETE /feed/:user_id
func (h *sessionHandler) EndSession(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	if userID == "" {
		return response.NewFailed(domain.FEED_COMPOSE_FAILED, fiber.NewError(fiber.StatusBadRequest, "user_id is required"), h.logger).Send(ctx)
	}

	h.engine.EndSession(userID)
	return response.NewSuccess(domain.FEED_COMPOSE_SUCCESS, nil, nil).Send(ctx)
}

func (h *sessionHandler) sendEngineError(ctx *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, usecase.ErrNoSession), errors.Is(err, usecase.ErrEmptyFeed):
		return response.NewFailed(msg, fiber.NewError(fiber.StatusBadRequest, err.Error()), h.logger).Send(ctx)
	case errors.Is(err, usecase.ErrOutOfRange):
		// Invariant engine dilanggar: programmer error, bukan input user.
		return response.NewFailed(msg, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	default:
		return response.NewFailed(msg, fiber.NewError(fiber.StatusInternalServerError, err.Error()), h.logger).Send(ctx)
	}
}
