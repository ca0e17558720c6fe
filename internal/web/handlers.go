package web

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thenoetrevino/tablero/internal/app"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/services/board"
	"github.com/thenoetrevino/tablero/internal/transfer"
	"github.com/thenoetrevino/tablero/internal/types"
)

const importMaxSize = 10 << 20

// Register wires up all routes on the provided Echo instance.
// A nil metrics disables GET /api/metrics and drop counting.
func Register(e *echo.Echo, a *app.App, metrics *Metrics) {
	e.GET("/", summary(a))
	e.GET("/healthz", healthz(a))

	api := e.Group("/api")
	api.GET("/board", getBoard(a))
	api.GET("/stats", getStats(a))
	api.POST("/tasks", postTask(a))
	api.PATCH("/tasks/:id", patchTask(a))
	api.DELETE("/tasks/:id", deleteTask(a))
	api.POST("/tasks/:id/move", moveTask(a))
	api.POST("/drag", postDrag(a, metrics))
	api.PATCH("/columns/:id", patchColumn(a))
	api.POST("/columns/reorder", reorderColumns(a))
	api.GET("/export", getExport(a))
	api.POST("/import", postImport(a))
	api.DELETE("/data", deleteData(a))

	if metrics != nil {
		api.GET("/metrics", getMetrics(metrics))
	}
}

type boardResponse struct {
	Columns []models.Column `json:"columns"`
	Tasks   []models.Task   `json:"tasks"`
	Stats   models.Stats    `json:"stats"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type taskRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      types.ColumnID  `json:"status"`
	Priority    models.Priority `json:"priority"`
}

type taskPatchRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Status      *types.ColumnID  `json:"status"`
	Priority    *models.Priority `json:"priority"`
}

type moveRequest struct {
	Status types.ColumnID `json:"status"`
}

type dragRequest struct {
	Active string `json:"active"`
	Over   string `json:"over"`
}

type dragResponse struct {
	Outcome string `json:"outcome"`
	Changed bool   `json:"changed"`
}

type columnPatchRequest struct {
	Title   *string `json:"title"`
	Color   *string `json:"color"`
	BgColor *string `json:"bgColor"`
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func fail(c echo.Context, status int, err error) error {
	return c.JSON(status, errorResponse{Error: err.Error()})
}

func validationStatus(err error) int {
	if errors.Is(err, board.ErrUnknownColumn) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

func healthz(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		if a.KV.Degraded() {
			return c.JSON(http.StatusOK, map[string]string{"status": "degraded"})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func summary(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		stats := a.Board.Stats()

		var b strings.Builder
		b.WriteString("tablero\n\n")
		if stats.Total == 0 {
			b.WriteString("No tasks yet.\n")
		} else {
			for _, pc := range stats.PerColumn {
				fmt.Fprintf(&b, "%-16s %d\n", pc.Title, pc.Count)
			}
			fmt.Fprintf(&b, "%-16s %d\n", "Total", stats.Total)
		}
		return c.String(http.StatusOK, b.String())
	}
}

func getBoard(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, boardResponse{
			Columns: a.Board.Columns(),
			Tasks:   a.Board.Tasks(),
			Stats:   a.Board.Stats(),
		})
	}
}

func getStats(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, a.Board.Stats())
	}
}

func postTask(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req taskRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, errors.New("invalid body"))
		}

		in := models.TaskInput{
			Title:       strings.TrimSpace(req.Title),
			Description: req.Description,
			Status:      req.Status,
			Priority:    req.Priority,
		}
		if err := board.ValidateTaskInput(in, a.Board.Columns()); err != nil {
			return fail(c, validationStatus(err), err)
		}

		return c.JSON(http.StatusCreated, a.Board.AddTask(in))
	}
}

func patchTask(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := types.TaskID(c.Param("id"))
		if !a.Board.HasTask(id) {
			return fail(c, http.StatusNotFound, board.ErrTaskNotFound)
		}

		var req taskPatchRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, errors.New("invalid body"))
		}
		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			req.Title = &title
		}

		patch := models.TaskPatch{
			Title:       req.Title,
			Description: req.Description,
			Status:      req.Status,
			Priority:    req.Priority,
		}
		if err := board.ValidateTaskPatch(patch, a.Board.Columns()); err != nil {
			return fail(c, validationStatus(err), err)
		}

		if !a.Board.UpdateTask(id, patch) {
			return fail(c, http.StatusNotFound, board.ErrTaskNotFound)
		}
		task, _ := a.Board.Task(id)
		return c.JSON(http.StatusOK, task)
	}
}

func deleteTask(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !a.Board.DeleteTask(types.TaskID(c.Param("id"))) {
			return fail(c, http.StatusNotFound, board.ErrTaskNotFound)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func moveTask(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := types.TaskID(c.Param("id"))
		if !a.Board.HasTask(id) {
			return fail(c, http.StatusNotFound, board.ErrTaskNotFound)
		}

		var req moveRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, errors.New("invalid body"))
		}

		if !a.Board.MoveTask(id, req.Status) {
			return fail(c, http.StatusUnprocessableEntity, board.ErrUnknownColumn)
		}
		task, _ := a.Board.Task(id)
		return c.JSON(http.StatusOK, task)
	}
}

func postDrag(a *app.App, metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dragRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, errors.New("invalid body"))
		}

		out := a.Drag.Drop(req.Active, req.Over)
		if metrics != nil {
			metrics.ObserveDrop(out)
		}
		return c.JSON(http.StatusOK, dragResponse{Outcome: out.String(), Changed: out.Changed()})
	}
}

func patchColumn(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := types.ColumnID(c.Param("id"))
		if _, ok := a.Board.Column(id); !ok {
			return fail(c, http.StatusNotFound, board.ErrColumnNotFound)
		}

		var req columnPatchRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, errors.New("invalid body"))
		}
		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if err := board.ValidateColumnTitle(title); err != nil {
				return fail(c, http.StatusBadRequest, err)
			}
			req.Title = &title
		}

		if !a.Board.UpdateColumn(id, models.ColumnPatch{Title: req.Title, Color: req.Color, BgColor: req.BgColor}) {
			return fail(c, http.StatusNotFound, board.ErrColumnNotFound)
		}
		col, _ := a.Board.Column(id)
		return c.JSON(http.StatusOK, col)
	}
}

func reorderColumns(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req reorderRequest
		if err := c.Bind(&req); err != nil {
			return fail(c, http.StatusBadRequest, errors.New("invalid body"))
		}

		a.Board.ReorderColumns(req.From, req.To)
		return c.JSON(http.StatusOK, a.Board.Columns())
	}
}

func getExport(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		doc, err := a.Export(c.Request().Context())
		if err != nil {
			c.Logger().Error(err)
			return fail(c, http.StatusInternalServerError, err)
		}

		name := transfer.DefaultFilename(a.Now())
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
		c.Response().WriteHeader(http.StatusOK)
		return transfer.WriteDocument(c.Response(), doc)
	}
}

func postImport(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(io.LimitReader(c.Request().Body, importMaxSize))
		if err != nil {
			return fail(c, http.StatusBadRequest, errors.New("invalid body"))
		}

		res, err := a.Import(c.Request().Context(), body)
		if err != nil {
			if errors.Is(err, transfer.ErrInvalidDocument) {
				return fail(c, http.StatusBadRequest, err)
			}
			c.Logger().Error(err)
			return fail(c, http.StatusInternalServerError, err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func deleteData(a *app.App) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := a.Clear(c.Request().Context()); err != nil {
			c.Logger().Error(err)
			return fail(c, http.StatusInternalServerError, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func getMetrics(metrics *Metrics) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, metrics.GetSnapshot())
	}
}
