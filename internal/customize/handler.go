package customize

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menustudio/internal/menu"
)

// Handler exposes a stateless quote endpoint: the preview client sends
// the full selection state and gets back validation results and the
// computed price breakdown.
type Handler struct {
	store *menu.Store
}

func NewHandler(store *menu.Store) *Handler {
	return &Handler{store: store}
}

// QuoteRequest carries one customization round-trip. Selections maps
// group id to an option id (required groups) or a list of option ids
// (optional groups).
type QuoteRequest struct {
	CategoryID string         `json:"categoryId"`
	ItemID     string         `json:"itemId"`
	Selections map[string]any `json:"selections"`
	Quantity   int            `json:"quantity"`
}

// Quote builds a session for the item, applies the requested
// selections, validates, and prices.
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, ok := h.store.FindItem(req.CategoryID, req.ItemID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}

	session := NewSession(item)
	ApplySelections(session, item, req.Selections)
	session.SetQuantity(req.Quantity)

	valid := session.Validate()
	base, modifierTotal, total := session.Price()

	c.JSON(http.StatusOK, gin.H{
		"valid":         valid,
		"errors":        session.Errors(),
		"basePrice":     base,
		"modifierTotal": modifierTotal,
		"quantity":      session.Quantity(),
		"totalPrice":    total,
	})
}

// ApplySelections drives the session to the requested selection state
// using only its public operations. Required groups take the string
// value directly; optional groups are toggled into the desired list.
func ApplySelections(session *Session, item menu.MenuItem, selections map[string]any) {
	for _, group := range item.ModifierGroups {
		raw, ok := selections[group.ID]
		if !ok {
			continue
		}

		if group.Required {
			if optionID, ok := raw.(string); ok {
				session.SelectOption(group.ID, optionID)
			}
			continue
		}

		desired := toStringSet(raw)
		if desired == nil {
			continue
		}
		_, current := session.Selected(group.ID)
		for _, id := range current {
			if !desired[id] {
				session.ToggleOption(group.ID, id)
			}
		}
		for _, opt := range group.Options {
			if desired[opt.ID] && !contains(current, opt.ID) {
				session.ToggleOption(group.ID, opt.ID)
			}
		}
	}
}

func toStringSet(raw any) map[string]bool {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	set := make(map[string]bool, len(list))
	for _, v := range list {
		if id, ok := v.(string); ok {
			set[id] = true
		}
	}
	return set
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
