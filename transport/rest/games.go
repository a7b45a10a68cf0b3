package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

type gameUseCase interface {
	NewGame(ctx context.Context) (entity.GameView, error)
	GetGame(ctx context.Context, id string) (entity.GameView, error)
	MakeMove(ctx context.Context, id string, cell int) (entity.GameView, error)
	JumpTo(ctx context.Context, id string, step int) (entity.GameView, error)
	ToggleMoveOrder(ctx context.Context, id string) (entity.GameView, error)
	DeleteGame(ctx context.Context, id string) error
}

type GameHandler interface {
	CreateGame(ctx echo.Context) error
	GetGame(ctx echo.Context) error
	DeleteGame(ctx echo.Context) error
	MakeMove(ctx echo.Context) error
	JumpTo(ctx echo.Context) error
	ToggleMoveOrder(ctx echo.Context) error
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type jumpRequest struct {
	Step *int `json:"step"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type gameHandler struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "game_handler"),
		games:  games,
	}
}

func (that *gameHandler) CreateGame(ctx echo.Context) error {
	view, err := that.games.NewGame(ctx.Request().Context())
	if err != nil {
		return that.sendError(ctx, "CreateGame", err)
	}

	return ctx.JSON(http.StatusCreated, view)
}

func (that *gameHandler) GetGame(ctx echo.Context) error {
	view, err := that.games.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.sendError(ctx, "GetGame", err)
	}

	return ctx.JSON(http.StatusOK, view)
}

func (that *gameHandler) DeleteGame(ctx echo.Context) error {
	if err := that.games.DeleteGame(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return that.sendError(ctx, "DeleteGame", err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (that *gameHandler) MakeMove(ctx echo.Context) error {
	var req moveRequest
	if err := ctx.Bind(&req); err != nil || req.Cell == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "cell is required"})
	}

	view, err := that.games.MakeMove(ctx.Request().Context(), ctx.Param("id"), *req.Cell)
	if err != nil {
		return that.sendError(ctx, "MakeMove", err)
	}

	return ctx.JSON(http.StatusOK, view)
}

func (that *gameHandler) JumpTo(ctx echo.Context) error {
	var req jumpRequest
	if err := ctx.Bind(&req); err != nil || req.Step == nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "step is required"})
	}

	view, err := that.games.JumpTo(ctx.Request().Context(), ctx.Param("id"), *req.Step)
	if err != nil {
		return that.sendError(ctx, "JumpTo", err)
	}

	return ctx.JSON(http.StatusOK, view)
}

func (that *gameHandler) ToggleMoveOrder(ctx echo.Context) error {
	view, err := that.games.ToggleMoveOrder(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return that.sendError(ctx, "ToggleMoveOrder", err)
	}

	return ctx.JSON(http.StatusOK, view)
}

func (that *gameHandler) sendError(ctx echo.Context, method string, err error) error {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: apperror.ErrGameNotFound.Error()})
	case errors.Is(err, apperror.ErrInvalidGameID):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: apperror.ErrInvalidGameID.Error()})
	default:
		that.logger.Error("request failed", "method", method, "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
	}
}
