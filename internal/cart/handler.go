package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menustudio/internal/customize"
	"menustudio/internal/menu"
)

// Handler exposes the session cart. Adding runs the same validation
// and pricing path the quote endpoint uses; an invalid selection never
// reaches the cart.
type Handler struct {
	store *menu.Store
	cart  *Cart
}

func NewHandler(store *menu.Store, cart *Cart) *Handler {
	return &Handler{store: store, cart: cart}
}

// List returns the cart entries and the badge count.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"entries": h.cart.Entries(),
		"count":   h.cart.Count(),
	})
}

// Add validates the customization and appends an entry with the
// computed total.
func (h *Handler) Add(c *gin.Context) {
	var req struct {
		CategoryID string         `json:"categoryId"`
		ItemID     string         `json:"itemId"`
		Selections map[string]any `json:"selections"`
		Quantity   int            `json:"quantity"`
		Notes      string         `json:"notes"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, ok := h.store.FindItem(req.CategoryID, req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	session := customize.NewSession(item)
	customize.ApplySelections(session, item, req.Selections)
	session.SetQuantity(req.Quantity)
	session.SetSpecialInstructions(req.Notes)

	if !session.Validate() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": session.Errors()})
		return
	}

	id := h.cart.Add(item, session.Quantity(), session.TotalPrice(), req.Notes)
	c.JSON(http.StatusCreated, gin.H{
		"id":         id,
		"totalPrice": session.TotalPrice(),
		"count":      h.cart.Count(),
	})
}
