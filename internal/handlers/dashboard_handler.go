package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/query"
	"invoice-dashboard-backend/internal/repository"
)

type DashboardHandler struct {
	invoices  *repository.InvoiceRepository
	customers *repository.CustomerRepository
	revenue   *repository.RevenueRepository
	cards     *repository.CardRepository
}

func NewDashboardHandler(
	invoices *repository.InvoiceRepository,
	customers *repository.CustomerRepository,
	revenue *repository.RevenueRepository,
	cards *repository.CardRepository,
) *DashboardHandler {
	return &DashboardHandler{
		invoices:  invoices,
		customers: customers,
		revenue:   revenue,
		cards:     cards,
	}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *DashboardHandler) Cards(c *gin.Context) {
	summary, err := h.cards.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *DashboardHandler) Revenue(c *gin.Context) {
	series, err := h.revenue.Series(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": series})
}

func (h *DashboardHandler) LatestInvoices(c *gin.Context) {
	n := 5
	if v := c.Query("count"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid count"})
			return
		}
		n = parsed
	}

	latest, err := h.invoices.Latest(c.Request.Context(), n)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": latest})
}

// invoiceFilter assembles the structured filter from query params.
// Status validity is checked by the filter composer, not here.
func invoiceFilter(c *gin.Context) (query.InvoiceFilter, error) {
	var f query.InvoiceFilter
	if v := c.Query("date"); v != "" {
		date, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, errors.New("invalid date, expected YYYY-MM-DD")
		}
		f.Date = &date
	}
	if v := c.Query("status"); v != "" {
		status := models.InvoiceStatus(v)
		f.Status = &status
	}
	if v := c.Query("amount"); v != "" {
		amount, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return f, errors.New("invalid amount, expected integer cents")
		}
		f.Amount = &amount
	}
	if v := c.Query("name"); v != "" {
		f.CustomerName = &v
	}
	if v := c.Query("email"); v != "" {
		f.CustomerEmail = &v
	}
	return f, nil
}

func pageParam(c *gin.Context) (*query.Page, error) {
	v := c.DefaultQuery("page", "1")
	number, err := strconv.Atoi(v)
	if err != nil {
		return nil, errors.New("invalid page number")
	}
	return &query.Page{Number: number, Size: query.DefaultPageSize}, nil
}

func (h *DashboardHandler) FilteredInvoices(c *gin.Context) {
	filter, err := invoiceFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, err := pageParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoices, err := h.invoices.Filtered(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}

	pages, err := h.invoices.Pages(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoices":    invoices,
		"total_pages": pages,
	})
}

func (h *DashboardHandler) SearchInvoices(c *gin.Context) {
	page, err := pageParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoices, err := h.invoices.Search(c.Request.Context(), c.Query("q"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

func (h *DashboardHandler) InvoiceByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	invoice, err := h.invoices.ByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *DashboardHandler) Customers(c *gin.Context) {
	customers, err := h.customers.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// CustomerTable applies one search term to both name and email, the
// way the dashboard's single search box does.
func (h *DashboardHandler) CustomerTable(c *gin.Context) {
	term := c.Query("query")
	summaries, err := h.customers.Filtered(c.Request.Context(), repository.CustomerQuery{
		NameLike:  term,
		EmailLike: term,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": summaries})
}
