package menu

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler exposes the store's operations to the editor and preview
// clients. All logic lives in the store; the handler only binds input
// and maps applied/ignored to status codes.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GetMenu returns the full configuration snapshot.
func (h *Handler) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// PreviewCategory is a category with its presentation resolved through
// the override-or-default fallback.
type PreviewCategory struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon,omitempty"`
	CardStyle CardStyle  `json:"cardStyle"`
	Columns   int        `json:"columns"`
	Items     []MenuItem `json:"items"`
}

// Preview returns the consumer-facing view: every category with its
// effective card style and column count already resolved.
func (h *Handler) Preview(c *gin.Context) {
	config := h.store.Snapshot()

	categories := make([]PreviewCategory, 0, len(config.Categories))
	for _, cat := range config.Categories {
		categories = append(categories, PreviewCategory{
			ID:        cat.ID,
			Name:      cat.Name,
			Icon:      cat.Icon,
			CardStyle: EffectiveCardStyle(cat, config),
			Columns:   EffectiveColumns(cat, config),
			Items:     cat.Items,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurantInfo":     config.RestaurantInfo,
		"chefSpecials":       config.ChefSpecials,
		"shadow":             config.Shadow,
		"colors":             config.Colors,
		"menuDisplay":        config.Display,
		"navigationSettings": config.NavigationSettings,
		"theme":              config.Theme,
		"categories":         categories,
	})
}

// AddCategory creates a new empty category. Blank names are rejected
// here, mirroring the editor UI's trim-and-ignore guard.
func (h *Handler) AddCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category name required"})
		return
	}

	id := h.store.AddCategory(name)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// RemoveCategory deletes a category. Unknown ids return 200 as well:
// the end state is identical either way.
func (h *Handler) RemoveCategory(c *gin.Context) {
	h.store.RemoveCategory(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AddItem appends a placeholder item to a category.
func (h *Handler) AddItem(c *gin.Context) {
	itemID, ok := h.store.AddItem(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": itemID})
}

// UpdateItem replaces a full item value within a category.
func (h *Handler) UpdateItem(c *gin.Context) {
	var item MenuItem
	if err := c.BindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	item.ID = c.Param("itemId")

	if !h.store.UpdateItem(c.Param("id"), item) {
		c.JSON(http.StatusNotFound, gin.H{"error": "category or item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ToggleBadge flips one label in an item's tag or allergen set.
func (h *Handler) ToggleBadge(c *gin.Context) {
	var req struct {
		Type  string `json:"type"`
		Label string `json:"label"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	field := BadgeField(req.Type)
	if field != BadgeTags && field != BadgeAllergens {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be tags or allergens"})
		return
	}

	if !h.store.ToggleBadge(c.Param("id"), c.Param("itemId"), field, req.Label) {
		c.JSON(http.StatusNotFound, gin.H{"error": "category or item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetCategoryStyle sets the per-category card style override.
func (h *Handler) SetCategoryStyle(c *gin.Context) {
	var req struct {
		Style CardStyle `json:"style"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !h.store.SetCategoryStyle(c.Param("id"), req.Style) {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetCategoryColumns sets the per-category column override.
func (h *Handler) SetCategoryColumns(c *gin.Context) {
	var req struct {
		Columns int `json:"columns"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !h.store.SetCategoryColumns(c.Param("id"), req.Columns) {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetDefaults updates the global fallback style and/or column count.
func (h *Handler) SetDefaults(c *gin.Context) {
	var req struct {
		CardStyle *CardStyle `json:"cardStyle"`
		Columns   *int       `json:"columns"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.CardStyle != nil {
		h.store.SetDefaultStyle(*req.CardStyle)
	}
	if req.Columns != nil {
		h.store.SetDefaultColumns(*req.Columns)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetShadow updates the global shadow level.
func (h *Handler) SetShadow(c *gin.Context) {
	var req struct {
		Shadow ShadowLevel `json:"shadow"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	h.store.SetShadow(req.Shadow)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetNavigation updates the legacy navigation layout and/or style; the
// store mirrors both into the extended settings block.
func (h *Handler) SetNavigation(c *gin.Context) {
	var req struct {
		Layout *NavigationLayout `json:"layout"`
		Style  *NavigationStyle  `json:"style"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Layout != nil {
		h.store.SetNavigationLayout(*req.Layout)
	}
	if req.Style != nil {
		h.store.SetNavigationStyle(*req.Style)
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetThemeColor updates one legacy color field by key.
func (h *Handler) SetThemeColor(c *gin.Context) {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !h.store.SetThemeColor(req.Key, req.Value) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown color key"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type settingRequest struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// SetDisplaySetting updates one extended display field by key.
func (h *Handler) SetDisplaySetting(c *gin.Context) {
	var req settingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !h.store.SetDisplaySetting(req.Key, req.Value) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetNavigationSetting updates one extended navigation field by key.
func (h *Handler) SetNavigationSetting(c *gin.Context) {
	var req settingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if !h.store.SetNavigationSetting(req.Key, req.Value) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// SetThemeSetting updates one extended theme field by key. JSON
// numbers arrive as float64 and gradient objects as maps, so both are
// coerced before reaching the store.
func (h *Handler) SetThemeSetting(c *gin.Context) {
	var req settingRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	value := req.Value
	switch req.Key {
	case "borderRadius":
		f, ok := value.(float64)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "borderRadius must be a number"})
			return
		}
		value = int(f)
	case "primaryGradient":
		m, ok := value.(map[string]any)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "primaryGradient must be an object"})
			return
		}
		start, _ := m["start"].(string)
		end, _ := m["end"].(string)
		value = GradientConfig{Start: start, End: end}
	}

	if !h.store.SetThemeSetting(req.Key, value) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetPalette returns the curated badge labels the editor offers.
func (h *Handler) GetPalette(c *gin.Context) {
	c.JSON(http.StatusOK, DefaultPalette)
}
