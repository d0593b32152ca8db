package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/rule-hunter/internal/token"
	"github.com/labstack/echo/v4"
)

type errorResponse struct {
	Error    string `json:"error"`
	Title    string `json:"title,omitempty"`
	Position *int   `json:"position,omitempty"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorResponse{
				Error:    ve.Error(),
				Title:    "validation error",
				Position: errorPosition(ve),
			})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, errorResponse{Error: msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// errorPosition extracts the source offset of an expression error, if any.
func errorPosition(err error) *int {
	var lexErr *token.LexicalError
	if errors.As(err, &lexErr) {
		return &lexErr.Position
	}
	var tokErr *token.UnexpectedTokenError
	if errors.As(err, &tokErr) {
		return &tokErr.Found.Position
	}
	return nil
}
