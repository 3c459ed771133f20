package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mociber/booking-api/internal/core/catalog"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List handles GET /v1/services.
//
// @Summary      List service categories
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listServicesResponse
// @Router       /v1/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	categories := catalog.All()
	items := make([]serviceSummaryResponse, 0, len(categories))
	for _, cat := range categories {
		items = append(items, serviceSummaryResponse{
			Key:   cat.Key,
			Title: cat.Title,
			Links: serviceLinks{
				Self:    "/v1/services/" + cat.Key,
				Request: "/v1/requests",
			},
		})
	}
	return c.JSON(http.StatusOK, listServicesResponse{Data: items})
}

// Get handles GET /v1/services/:serviceType. Unknown tokens never 404: they
// degrade to the default category, matching the behaviour customers see.
//
// @Summary      Get a service category
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        serviceType  path      string  true  "Category token or alias (e.g. plumbing, ac, fridge)"
// @Success      200          {object}  serviceDetailResponse
// @Router       /v1/services/{serviceType} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	token := c.Param("serviceType")
	cat := catalog.CategoryFor(token)

	return c.JSON(http.StatusOK, serviceDetailResponse{
		Key:         cat.Key,
		Title:       cat.Title,
		Subtitle:    cat.Subtitle,
		Description: cat.Description,
		SubServices: catalog.SubServicesFor(token),
		TimeRange:   cat.TimeRange,
		CostRange:   cat.CostRange,
		AgentPhone:  catalog.AgentPhone,
		Links: serviceLinks{
			Self:    "/v1/services/" + cat.Key,
			Request: "/v1/requests",
		},
	})
}
