package handler

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"sipengawas/internal/auth"
	"sipengawas/internal/errors"
	"sipengawas/internal/upload"
)

// currentClaims extracts the authenticated claims set by the JWT middleware.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// currentUserID returns the authenticated user's id. Record ownership always
// comes from the token, never from the request body.
func currentUserID(c echo.Context) (string, error) {
	claims, err := currentClaims(c)
	if err != nil {
		return "", err
	}
	return claims.UserID, nil
}

// savePhoto stores one optional multipart photo field and returns its
// generated filename, or nil when the field was not sent.
func savePhoto(c echo.Context, saver *upload.Saver, field string) (*string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// absent field, not an error
		return nil, nil
	}

	name, err := saver.Save(fh)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "INVALID_UPLOAD",
		})
	}
	return &name, nil
}

// parseDate accepts RFC3339 timestamps or plain yyyy-mm-dd dates from form
// fields. An empty value returns the zero time; the store fills the default.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func optString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func mapDomainError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
