package menu

// NavigationLayout is the legacy top-level navigation placement.
type NavigationLayout string

const (
	NavigationHorizontal NavigationLayout = "horizontal"
	NavigationSidebar    NavigationLayout = "sidebar"
)

// NavigationStyle controls how category pills are drawn.
type NavigationStyle string

const (
	NavigationFilled   NavigationStyle = "filled"
	NavigationOutlined NavigationStyle = "outlined"
	NavigationGhost    NavigationStyle = "ghost"
)

// CardStyle is the per-category card layout.
type CardStyle string

const (
	CardCompact   CardStyle = "compact"
	CardFeature   CardStyle = "feature"
	CardList      CardStyle = "list"
	CardHero      CardStyle = "hero"
	CardSquare    CardStyle = "square"
	CardRectangle CardStyle = "rectangle"
)

// ShadowLevel is the global card shadow intensity.
type ShadowLevel string

const (
	ShadowOff    ShadowLevel = "off"
	ShadowSubtle ShadowLevel = "subtle"
	ShadowMedium ShadowLevel = "medium"
	ShadowStrong ShadowLevel = "strong"
)

// FoodPairing is a suggested drink or side shown alongside an item.
type FoodPairing struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ModifierOption is a single purchasable choice inside a group.
type ModifierOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Default     bool    `json:"default,omitempty"`
}

// ModifierGroup is a named cluster of options attached to an item.
// Required groups demand exactly one selection at checkout; optional
// groups allow any number. Min/Max are carried in the model but the
// validator does not enforce them.
type ModifierGroup struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Required bool             `json:"required"`
	Min      int              `json:"min,omitempty"`
	Max      int              `json:"max,omitempty"`
	Options  []ModifierOption `json:"options"`
}

// MenuItem is a sellable entry. The ID is unique across the whole
// configuration tree and immutable after creation.
type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          string          `json:"price"`
	Image          string          `json:"image,omitempty"`
	Gallery        []string        `json:"gallery,omitempty"`
	Tags           []string        `json:"tags"`
	Allergens      []string        `json:"allergens"`
	FoodPairings   []FoodPairing   `json:"foodPairings,omitempty"`
	Pairings       []MenuItem      `json:"pairings,omitempty"`
	ChefNotes      string          `json:"chefNotes,omitempty"`
	Ingredients    []string        `json:"ingredients,omitempty"`
	ModifierGroups []ModifierGroup `json:"modifierGroups,omitempty"`
	Badges         []string        `json:"badges,omitempty"`
	DietaryTags    []string        `json:"dietaryTags,omitempty"`
	PrepTime       int             `json:"prepTime,omitempty"`
	Calories       int             `json:"calories,omitempty"`
	Rating         float64         `json:"rating,omitempty"`
	ReviewCount    int             `json:"reviewCount,omitempty"`
	IsSample       bool            `json:"isSample,omitempty"`
	IsFeatured     bool            `json:"isFeatured,omitempty"`
	IsChefFavorite bool            `json:"isChefFavorite,omitempty"`
	IsTopReviewed  bool            `json:"isTopReviewed,omitempty"`
	IsMostPopular  bool            `json:"isMostPopular,omitempty"`
}

// ChefSpecial is a curated multi-course feature block.
type ChefSpecial struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Subtitle       string     `json:"subtitle"`
	Description    string     `json:"description"`
	Courses        []MenuItem `json:"courses"`
	Price          string     `json:"price"`
	Image          string     `json:"image"`
	AvailableUntil string     `json:"availableUntil,omitempty"`
}

// RestaurantInfo is the static identity block rendered in the hero.
type RestaurantInfo struct {
	Name         string            `json:"name"`
	Tagline      string            `json:"tagline"`
	CuisineTypes []string          `json:"cuisineTypes"`
	Address      string            `json:"address"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email"`
	Hours        map[string]string `json:"hours"`
	HeroImage    string            `json:"heroImage"`
	Story        string            `json:"story,omitempty"`
}

// CategoryConfig groups items and optionally overrides the global card
// style and column count. A nil override falls back to the config-wide
// default; the fallback is resolved only through EffectiveCardStyle and
// EffectiveColumns, never inline.
type CategoryConfig struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Icon              string     `json:"icon,omitempty"`
	CardStyleOverride *CardStyle `json:"cardStyleOverride,omitempty"`
	ColumnsOverride   *int       `json:"columnsOverride,omitempty"`
	Items             []MenuItem `json:"items"`
}

// ThemeConfig is the legacy four-color theme block.
type ThemeConfig struct {
	PreviewBackground string `json:"previewBackground"`
	CardBackground    string `json:"cardBackground"`
	Text              string `json:"text"`
	Accent            string `json:"accent"`
}

// GradientConfig is a two-stop color gradient.
type GradientConfig struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DisplaySettings is the extended grid and card presentation block.
// Columns is a string because "auto" sits alongside the fixed counts.
type DisplaySettings struct {
	Columns            string `json:"columns"`            // 1 | 2 | 3 | auto
	Gap                string `json:"gap"`                // compact | comfortable | spacious
	CardStyle          string `json:"cardStyle"`          // elevated | flat | outlined | minimal
	ImagePosition      string `json:"imagePosition"`      // top | left | right | background
	ImageAspectRatio   string `json:"imageAspectRatio"`   // square | landscape | portrait | none
	Density            string `json:"density"`            // compact | comfortable | spacious
	DescriptionDisplay string `json:"descriptionDisplay"` // full | truncated | hidden
	ShowPrepTime       bool   `json:"showPrepTime"`
	ShowDietaryIcons   bool   `json:"showDietaryIcons"`
	ShowCalories       bool   `json:"showCalories"`
	ShowBadges         bool   `json:"showBadges"`
}

// NavigationSettings is the extended navigation block. Layout and Style
// mirror the legacy top-level fields; the store keeps both in sync.
type NavigationSettings struct {
	Layout     string `json:"layout"` // top | sidebar | auto
	Style      string `json:"style"`  // filled | outlined | ghost
	Sticky     bool   `json:"sticky"`
	ShowIcons  bool   `json:"showIcons"`
	ShowCounts bool   `json:"showCounts"`
	Spacing    string `json:"spacing"`    // compact | comfortable | spacious
	Typography string `json:"typography"` // small | medium | large
}

// ThemeSettings is the extended brand styling block.
type ThemeSettings struct {
	PrimaryGradient GradientConfig `json:"primaryGradient"`
	Background      string         `json:"background"`
	TextPrimary     string         `json:"textPrimary"`
	TextSecondary   string         `json:"textSecondary"`
	CardBackground  string         `json:"cardBackground"`
	CardBorder      string         `json:"cardBorder"`
	BorderRadius    int            `json:"borderRadius"`
}

// MenuConfig is the root aggregate. Exactly one exists per session and
// every category and item is reachable only through it.
type MenuConfig struct {
	NavigationLayout   NavigationLayout   `json:"navigationLayout"`
	NavigationStyle    NavigationStyle    `json:"navigationStyle"`
	CardStyleDefault   CardStyle          `json:"cardStyleDefault"`
	ColumnsDefault     int                `json:"columnsDefault"`
	Shadow             ShadowLevel        `json:"shadow"`
	Colors             ThemeConfig        `json:"colors"`
	Display            DisplaySettings    `json:"menuDisplay"`
	NavigationSettings NavigationSettings `json:"navigationSettings"`
	Theme              ThemeSettings      `json:"theme"`
	Categories         []CategoryConfig   `json:"categories"`
	RestaurantInfo     RestaurantInfo     `json:"restaurantInfo"`
	ChefSpecials       []ChefSpecial      `json:"chefSpecials,omitempty"`
}

// BadgePalette holds the curated labels offered by the editor.
type BadgePalette struct {
	Tags      []string `json:"tags"`
	Allergens []string `json:"allergens"`
}

// NewEmptyCategory returns a fresh category with no items and no
// overrides. The caller supplies a tree-unique id.
func NewEmptyCategory(name, id string) CategoryConfig {
	return CategoryConfig{
		ID:    id,
		Name:  name,
		Items: []MenuItem{},
	}
}

// NewEmptyItem returns a fresh placeholder item.
func NewEmptyItem(id string) MenuItem {
	return MenuItem{
		ID:        id,
		Name:      "New Item",
		Price:     "$0.00",
		Tags:      []string{},
		Allergens: []string{},
	}
}

// EffectiveCardStyle resolves a category's card style: the override
// when set, otherwise the config-wide default.
func EffectiveCardStyle(category CategoryConfig, config *MenuConfig) CardStyle {
	if category.CardStyleOverride != nil {
		return *category.CardStyleOverride
	}
	return config.CardStyleDefault
}

// EffectiveColumns resolves a category's column count the same way.
func EffectiveColumns(category CategoryConfig, config *MenuConfig) int {
	if category.ColumnsOverride != nil {
		return *category.ColumnsOverride
	}
	return config.ColumnsDefault
}
