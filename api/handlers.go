package api

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, board Board, deduper Deduper, logger *log.Logger) {
	e.GET("/api/board", getBoard(board, logger))
	e.GET("/api/board/view", getBoardView(board))
	e.POST("/api/lists", postList(board))
	e.POST("/api/cards", postCard(board))
	e.PUT("/api/cards/:id", putCard(board))
	e.DELETE("/api/cards/:id", deleteCard(board))
	e.POST("/api/cards/:id/move", postCardMove(board, deduper))
	e.POST("/api/board/theme/toggle", postThemeToggle(board))
	e.PUT("/api/board/search", putSearch(board))
	e.GET("/stream", streamBoard(board, newUpdateBroker(board)))
	e.GET("/healthz", healthz())
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}

func decodeIntent(c echo.Context, v any) error {
	lr := io.LimitReader(c.Request().Body, intentMaxSize)
	dec := sonic.ConfigStd.NewDecoder(lr)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func getBoard(board Board, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		ctx := c.Request().Context()
		metrics, spanCtx := newBoardRequestMetrics(ctx, logger)
		if spanCtx != nil {
			c.SetRequest(c.Request().WithContext(spanCtx))
		}
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		fetchStart := time.Now()
		state := board.Snapshot()
		metrics.ObserveFetch(time.Since(fetchStart))
		metrics.SetCardsReturned(len(state.Cards))
		metrics.SetSearchActive(state.SearchTerm != "")

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, state)
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}

func getBoardView(board Board) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, board.View())
	}
}

func postList(board Board) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req addListRequest
		if err := decodeIntent(c, &req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		if strings.TrimSpace(req.Title) == "" {
			return c.String(http.StatusBadRequest, "title is required")
		}
		list := board.AddList(req.Title)
		return c.JSON(http.StatusCreated, list)
	}
}

func postCard(board Board) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req addCardRequest
		if err := decodeIntent(c, &req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		if strings.TrimSpace(req.Title) == "" {
			return c.String(http.StatusBadRequest, "title is required")
		}
		if req.ListID == "" {
			return c.String(http.StatusBadRequest, "listId is required")
		}
		card := board.AddCard(req.ListID, req.Title, req.Description)
		return c.JSON(http.StatusCreated, card)
	}
}

func putCard(board Board) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req updateCardRequest
		if err := decodeIntent(c, &req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		// Unmatched ids are a defined no-op, not an error.
		board.UpdateCard(c.Param("id"), req.Title, req.Description)
		return c.NoContent(http.StatusNoContent)
	}
}

func deleteCard(board Board) echo.HandlerFunc {
	return func(c echo.Context) error {
		board.DeleteCard(c.Param("id"))
		return c.NoContent(http.StatusNoContent)
	}
}

func postCardMove(board Board, deduper Deduper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req moveCardRequest
		if err := decodeIntent(c, &req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		if req.TargetListID == "" {
			return c.String(http.StatusBadRequest, "targetListId is required")
		}
		if req.IdempotencyKey == "" {
			req.IdempotencyKey = uuid.NewString()
		}

		fresh, err := deduper.Add(c.Request().Context(), req.IdempotencyKey)
		if err != nil {
			// Replay protection is best-effort; the intent still applies.
			c.Logger().Warnf("dedupe unavailable: %v", err)
			fresh = true
		}
		if fresh {
			board.ReorderCards(req.SourceListID, c.Param("id"), req.TargetListID)
		}
		return c.JSON(http.StatusAccepted, moveCardResponse{IdempotencyKey: req.IdempotencyKey})
	}
}

func postThemeToggle(board Board) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, themeResponse{Theme: board.ToggleTheme()})
	}
}

func putSearch(board Board) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req searchRequest
		if err := decodeIntent(c, &req); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		board.SetSearchTerm(req.Term)
		return c.NoContent(http.StatusNoContent)
	}
}
