package menu

import (
	"sync"

	"github.com/google/uuid"
)

// BadgeField selects which label set ToggleBadge operates on.
type BadgeField string

const (
	BadgeTags      BadgeField = "tags"
	BadgeAllergens BadgeField = "allergens"
)

// Store owns the single root MenuConfig for a session. Every mutation
// is copy-on-write: the path from the root to the changed field is
// cloned and the root pointer swapped, so a snapshot handed to a reader
// is never modified afterwards. Mutations addressed to unknown ids
// leave the tree untouched and report false.
type Store struct {
	mu     sync.RWMutex
	config *MenuConfig
}

// NewStore creates a store seeded with the given config, or the
// hard-coded default when seed is nil.
func NewStore(seed *MenuConfig) *Store {
	if seed == nil {
		seed = DefaultConfig()
	}
	return &Store{config: seed}
}

// Snapshot returns the current configuration. The returned value must
// be treated as read-only and re-fetched after any mutation.
func (s *Store) Snapshot() *MenuConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// FindItem looks an item up by category and item id in the current
// snapshot.
func (s *Store) FindItem(categoryID, itemID string) (MenuItem, bool) {
	config := s.Snapshot()
	for _, cat := range config.Categories {
		if cat.ID != categoryID {
			continue
		}
		for _, item := range cat.Items {
			if item.ID == itemID {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

// --------------------------------------------------
// Category operations
// --------------------------------------------------

// AddCategory appends a new empty category and returns its id. Callers
// are expected to reject blank names before calling.
func (s *Store) AddCategory(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	next := *s.config
	next.Categories = append(copyCategories(s.config.Categories), NewEmptyCategory(name, id))
	s.config = &next
	return id
}

// RemoveCategory deletes the category and every item it owns. Removing
// an unknown id is a no-op.
func (s *Store) RemoveCategory(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]CategoryConfig, 0, len(s.config.Categories))
	for _, cat := range s.config.Categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	if len(kept) == len(s.config.Categories) {
		return false
	}

	next := *s.config
	next.Categories = kept
	s.config = &next
	return true
}

// AddItem appends a fresh placeholder item to the category and returns
// the new item's id.
func (s *Store) AddItem(categoryID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemID := uuid.New().String()
	applied := s.replaceCategory(categoryID, func(cat CategoryConfig) (CategoryConfig, bool) {
		cat.Items = append(copyItems(cat.Items), NewEmptyItem(itemID))
		return cat, true
	})
	if !applied {
		return "", false
	}
	return itemID, true
}

// UpdateItem replaces the item whose id matches item.ID within the
// category. Unknown category or item ids leave the tree untouched.
func (s *Store) UpdateItem(categoryID string, item MenuItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceCategory(categoryID, func(cat CategoryConfig) (CategoryConfig, bool) {
		items := copyItems(cat.Items)
		found := false
		for i := range items {
			if items[i].ID == item.ID {
				items[i] = item
				found = true
			}
		}
		cat.Items = items
		return cat, found
	})
}

// ToggleBadge adds the label to the item's tag or allergen set when
// absent and removes it when present. Applying it twice restores the
// original set.
func (s *Store) ToggleBadge(categoryID, itemID string, field BadgeField, label string) bool {
	if field != BadgeTags && field != BadgeAllergens {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceCategory(categoryID, func(cat CategoryConfig) (CategoryConfig, bool) {
		items := copyItems(cat.Items)
		found := false
		for i := range items {
			if items[i].ID != itemID {
				continue
			}
			found = true
			if field == BadgeTags {
				items[i].Tags = toggleLabel(items[i].Tags, label)
			} else {
				items[i].Allergens = toggleLabel(items[i].Allergens, label)
			}
		}
		cat.Items = items
		return cat, found
	})
}

// SetCategoryStyle sets or replaces the category's card style override.
// The global default is untouched.
func (s *Store) SetCategoryStyle(categoryID string, style CardStyle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceCategory(categoryID, func(cat CategoryConfig) (CategoryConfig, bool) {
		override := style
		cat.CardStyleOverride = &override
		return cat, true
	})
}

// SetCategoryColumns sets or replaces the category's column override.
func (s *Store) SetCategoryColumns(categoryID string, columns int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replaceCategory(categoryID, func(cat CategoryConfig) (CategoryConfig, bool) {
		override := columns
		cat.ColumnsOverride = &override
		return cat, true
	})
}

// --------------------------------------------------
// Global defaults
// --------------------------------------------------

// SetDefaultStyle changes the fallback card style. Categories with an
// explicit override are unaffected.
func (s *Store) SetDefaultStyle(style CardStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.config
	next.CardStyleDefault = style
	s.config = &next
}

// SetDefaultColumns changes the fallback column count.
func (s *Store) SetDefaultColumns(columns int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.config
	next.ColumnsDefault = columns
	s.config = &next
}

// SetShadow changes the global card shadow level.
func (s *Store) SetShadow(level ShadowLevel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.config
	next.Shadow = level
	s.config = &next
}

// SetNavigationLayout updates the legacy layout field and keeps the
// mirrored extended-settings field consistent.
func (s *Store) SetNavigationLayout(layout NavigationLayout) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.config
	next.NavigationLayout = layout
	if layout == NavigationSidebar {
		next.NavigationSettings.Layout = "sidebar"
	} else {
		next.NavigationSettings.Layout = "top"
	}
	s.config = &next
}

// SetNavigationStyle updates the legacy style field and its mirror.
func (s *Store) SetNavigationStyle(style NavigationStyle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.config
	next.NavigationStyle = style
	next.NavigationSettings.Style = string(style)
	s.config = &next
}

// --------------------------------------------------
// Keyed setters (legacy colors + extended settings)
// --------------------------------------------------

// SetThemeColor updates one field of the legacy color block by its
// json key. Unknown keys are rejected without touching the tree.
func (s *Store) SetThemeColor(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.config
	switch key {
	case "previewBackground":
		next.Colors.PreviewBackground = value
	case "cardBackground":
		next.Colors.CardBackground = value
	case "text":
		next.Colors.Text = value
	case "accent":
		next.Colors.Accent = value
	default:
		return false
	}
	s.config = &next
	return true
}

// SetDisplaySetting updates one field of the extended display block by
// its json key. The value must match the field's type.
func (s *Store) SetDisplaySetting(key string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.config
	if !applyDisplaySetting(&next.Display, key, value) {
		return false
	}
	s.config = &next
	return true
}

// SetNavigationSetting updates one field of the extended navigation
// block by its json key.
func (s *Store) SetNavigationSetting(key string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.config
	if !applyNavigationSetting(&next.NavigationSettings, key, value) {
		return false
	}
	s.config = &next
	return true
}

// SetThemeSetting updates one field of the extended theme block by its
// json key.
func (s *Store) SetThemeSetting(key string, value any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := *s.config
	if !applyThemeSetting(&next.Theme, key, value) {
		return false
	}
	s.config = &next
	return true
}

// --------------------------------------------------
// Internals
// --------------------------------------------------

// replaceCategory clones the category slice, applies transform to the
// matching category, and swaps the root only if the transform reports
// success. Caller must hold the lock.
func (s *Store) replaceCategory(categoryID string, transform func(CategoryConfig) (CategoryConfig, bool)) bool {
	idx := -1
	for i, cat := range s.config.Categories {
		if cat.ID == categoryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	replaced, ok := transform(s.config.Categories[idx])
	if !ok {
		return false
	}

	next := *s.config
	next.Categories = copyCategories(s.config.Categories)
	next.Categories[idx] = replaced
	s.config = &next
	return true
}

func copyCategories(cats []CategoryConfig) []CategoryConfig {
	out := make([]CategoryConfig, len(cats))
	copy(out, cats)
	return out
}

func copyItems(items []MenuItem) []MenuItem {
	out := make([]MenuItem, len(items))
	copy(out, items)
	return out
}

func toggleLabel(labels []string, label string) []string {
	for i, l := range labels {
		if l == label {
			out := make([]string, 0, len(labels)-1)
			out = append(out, labels[:i]...)
			return append(out, labels[i+1:]...)
		}
	}
	out := make([]string, 0, len(labels)+1)
	out = append(out, labels...)
	return append(out, label)
}

func applyDisplaySetting(d *DisplaySettings, key string, value any) bool {
	switch key {
	case "columns", "gap", "cardStyle", "imagePosition", "imageAspectRatio", "density", "descriptionDisplay":
		str, ok := value.(string)
		if !ok {
			return false
		}
		switch key {
		case "columns":
			d.Columns = str
		case "gap":
			d.Gap = str
		case "cardStyle":
			d.CardStyle = str
		case "imagePosition":
			d.ImagePosition = str
		case "imageAspectRatio":
			d.ImageAspectRatio = str
		case "density":
			d.Density = str
		case "descriptionDisplay":
			d.DescriptionDisplay = str
		}
		return true
	case "showPrepTime", "showDietaryIcons", "showCalories", "showBadges":
		b, ok := value.(bool)
		if !ok {
			return false
		}
		switch key {
		case "showPrepTime":
			d.ShowPrepTime = b
		case "showDietaryIcons":
			d.ShowDietaryIcons = b
		case "showCalories":
			d.ShowCalories = b
		case "showBadges":
			d.ShowBadges = b
		}
		return true
	}
	return false
}

func applyNavigationSetting(n *NavigationSettings, key string, value any) bool {
	switch key {
	case "layout", "style", "spacing", "typography":
		str, ok := value.(string)
		if !ok {
			return false
		}
		switch key {
		case "layout":
			n.Layout = str
		case "style":
			n.Style = str
		case "spacing":
			n.Spacing = str
		case "typography":
			n.Typography = str
		}
		return true
	case "sticky", "showIcons", "showCounts":
		b, ok := value.(bool)
		if !ok {
			return false
		}
		switch key {
		case "sticky":
			n.Sticky = b
		case "showIcons":
			n.ShowIcons = b
		case "showCounts":
			n.ShowCounts = b
		}
		return true
	}
	return false
}

func applyThemeSetting(t *ThemeSettings, key string, value any) bool {
	switch key {
	case "primaryGradient":
		g, ok := value.(GradientConfig)
		if !ok {
			return false
		}
		t.PrimaryGradient = g
		return true
	case "background", "textPrimary", "textSecondary", "cardBackground", "cardBorder":
		str, ok := value.(string)
		if !ok {
			return false
		}
		switch key {
		case "background":
			t.Background = str
		case "textPrimary":
			t.TextPrimary = str
		case "textSecondary":
			t.TextSecondary = str
		case "cardBackground":
			t.CardBackground = str
		case "cardBorder":
			t.CardBorder = str
		}
		return true
	case "borderRadius":
		radius, ok := value.(int)
		if !ok {
			return false
		}
		t.BorderRadius = radius
		return true
	}
	return false
}
