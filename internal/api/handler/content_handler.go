package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ContentHandler serves the role-gated member content. The routes carry no
// logic of their own; the interesting part is the gate each one sits behind.
type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

type contentResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Message     string `json:"message"`
}

// Welcome handles GET / — unauthenticated landing route.
func (h *ContentHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"api":     "Member Portal API",
		"version": "v1",
	})
}

// FinancialMarkets is gated on any authenticated member.
func (h *ContentHandler) FinancialMarkets(c echo.Context) error {
	user, err := principalFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contentResponse{
		Title:       "The Latest News from the Financial Markets",
		Description: "Financial news can be accessed by members only.",
		Message:     fmt.Sprintf("Hi, %s!", user.Username),
	})
}

// CompanyInsights is gated on exactly the staff role.
func (h *ContentHandler) CompanyInsights(c echo.Context) error {
	user, err := principalFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contentResponse{
		Title:       "Company Insights",
		Description: "Company Insights can be accessed only by members of staff.",
		Message:     fmt.Sprintf("Hi, %s! Stay up to date with the latest company events!", user.Username),
	})
}

// SystemAdministration is gated on exactly the admin role.
func (h *ContentHandler) SystemAdministration(c echo.Context) error {
	user, err := principalFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contentResponse{
		Title:       "System Administration",
		Description: "System Administration resources can be accessed by administrators only.",
		Message:     fmt.Sprintf("Hi, %s! Welcome to System Administration.", user.Username),
	})
}
