package api

import (
	"net/http"
	"strings"

	reqdto "foodshare/internal/handler/dto/request"
	resdto "foodshare/internal/handler/dto/response"
	"foodshare/internal/handler/httperr"
	"foodshare/internal/handler/middleware"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/commands"
	"foodshare/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey     = "Idempotency-Key"
	headerIdempotentReplayed = "Idempotent-Replayed"
)

type ListingHandler struct {
	listings commands.ListingCommands
	claims   commands.ClaimCommands
	q        queries.ListingQueries
}

func NewListingHandler(listings commands.ListingCommands, claims commands.ClaimCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{listings: listings, claims: claims, q: q}
}

// @Summary Create listing
// @Description Share surplus food. An Idempotency-Key makes retries safe.
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID identifying this submission"
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.ListingResponse
// @Success 200 {object} resdto.ListingResponse "Replayed submission"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	var key *uuid.UUID
	if raw := strings.TrimSpace(c.GetHeader(headerIdempotencyKey)); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
			return
		}
		key = &parsed
	}

	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.listings.CreateListing(c.Request.Context(), req, ownerID, key)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	if result.Replayed {
		c.Header(headerIdempotentReplayed, "true")
		c.JSON(http.StatusOK, resdto.FromListing(result.Listing))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromListing(result.Listing))
}

// @Summary List open listings
// @Description Open, unexpired listings, newest first
// @Tags listings
// @Produce json
// @Param category query string false "Category filter"
// @Param q query string false "Fuzzy title search within the page"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ListingListResponse
// @Failure 400 {object} httperr.Response
// @Router /listings [get]
func (h *ListingHandler) ListOpen(c *gin.Context) {
	var query reqdto.ListListingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	filters := queries.ListingFilters{Category: query.Category, Query: query.Q}
	items, next, err := h.q.ListOpen(c.Request.Context(), filters, &queries.Cursor{After: query.After}, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(items, next))
}

// @Summary Get listing
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Claim listing
// @Description Claim an open listing. At most one claim ever succeeds.
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 403 {object} httperr.Response "Own listing"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "Already claimed"
// @Failure 410 {object} httperr.Response "Expired"
// @Failure 503 {object} httperr.Response
// @Router /listings/{id}/claim [post]
func (h *ListingHandler) Claim(c *gin.Context) {
	claimantID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	l, err := h.claims.ClaimListing(c.Request.Context(), id, claimantID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListing(l))
}

// @Summary My donations
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor"
// @Success 200 {object} resdto.ListingListResponse
// @Router /me/listings [get]
func (h *ListingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, next, err := h.q.ListByOwner(c.Request.Context(), userID, &queries.Cursor{After: page.After}, page.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(items, next))
}

// @Summary My claim history
// @Tags listings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor"
// @Success 200 {object} resdto.ListingListResponse
// @Router /me/claims [get]
func (h *ListingHandler) ListMyClaims(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	var page reqdto.PageQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, next, err := h.q.ListClaimedBy(c.Request.Context(), userID, &queries.Cursor{After: page.After}, page.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(items, next))
}
