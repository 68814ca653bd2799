package menu

// DefaultPalette is the curated set of badge labels the editor offers.
var DefaultPalette = BadgePalette{
	Tags:      []string{"Bestseller", "Spicy", "Vegan", "Vegetarian", "Gluten Free"},
	Allergens: []string{"Dairy", "Gluten", "Nuts", "Shellfish", "Seeds"},
}

// DefaultConfig builds the hard-coded seed configuration. Every call
// returns a fresh tree so independent sessions never share state.
func DefaultConfig() *MenuConfig {
	return &MenuConfig{
		NavigationLayout: NavigationHorizontal,
		NavigationStyle:  NavigationFilled,
		CardStyleDefault: CardCompact,
		ColumnsDefault:   2,
		Shadow:           ShadowSubtle,
		Colors: ThemeConfig{
			PreviewBackground: "#f3f4f6",
			CardBackground:    "#ffffff",
			Text:              "#0f172a",
			Accent:            "#f97316",
		},
		Display: DisplaySettings{
			Columns:            "2",
			Gap:                "comfortable",
			CardStyle:          "elevated",
			ImagePosition:      "top",
			ImageAspectRatio:   "landscape",
			Density:            "comfortable",
			DescriptionDisplay: "full",
			ShowPrepTime:       true,
			ShowDietaryIcons:   true,
			ShowCalories:       false,
			ShowBadges:         true,
		},
		NavigationSettings: NavigationSettings{
			Layout:     "top",
			Style:      "filled",
			Sticky:     true,
			ShowIcons:  true,
			ShowCounts: false,
			Spacing:    "comfortable",
			Typography: "medium",
		},
		Theme: ThemeSettings{
			PrimaryGradient: GradientConfig{Start: "#f97316", End: "#ef4444"},
			Background:      "#f3f4f6",
			TextPrimary:     "#0f172a",
			TextSecondary:   "#475569",
			CardBackground:  "#ffffff",
			CardBorder:      "#e2e8f0",
			BorderRadius:    12,
		},
		RestaurantInfo: RestaurantInfo{
			Name:         "Bella Vista Restaurant",
			Tagline:      "Modern Italian Cuisine with a Creative Twist",
			CuisineTypes: []string{"Italian", "Pasta", "Pizza", "Seafood"},
			Address:      "123 Elm Street, Downtown District",
			Phone:        "(555) 123-4567",
			Email:        "reservations@bellavista.com",
			Hours: map[string]string{
				"Monday":    "11:00 AM - 10:00 PM",
				"Tuesday":   "11:00 AM - 10:00 PM",
				"Wednesday": "11:00 AM - 10:00 PM",
				"Thursday":  "11:00 AM - 10:00 PM",
				"Friday":    "11:00 AM - 11:00 PM",
				"Saturday":  "10:00 AM - 11:00 PM",
				"Sunday":    "10:00 AM - 9:00 PM",
			},
			HeroImage: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?auto=format&fit=crop&w=1600&q=80",
			Story:     "Since 2010, Bella Vista has been bringing authentic Italian flavors with a modern twist to our community.",
		},
		ChefSpecials: []ChefSpecial{
			{
				ID:             "tasting-menu",
				Title:          "Chef's Tasting Menu",
				Subtitle:       "5-Course Culinary Journey",
				Description:    "Experience our chef's finest creations in this carefully curated tasting menu.",
				Price:          "$95.00",
				Image:          "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?auto=format&fit=crop&w=1600&q=80",
				AvailableUntil: "Available Friday - Sunday",
				Courses: []MenuItem{
					{ID: "course-1", Name: "Amuse-Bouche", Description: "Parmesan crisp with truffle cream", Tags: []string{}, Allergens: []string{"Dairy", "Gluten"}},
					{ID: "course-2", Name: "Lobster Bisque", Description: "Cognac cream, herb oil", Tags: []string{}, Allergens: []string{"Shellfish", "Dairy"}},
					{ID: "course-3", Name: "Seared Scallops", Description: "Cauliflower puree, crispy prosciutto", Tags: []string{}, Allergens: []string{"Shellfish"}},
					{ID: "course-4", Name: "Beef Tenderloin", Description: "Red wine reduction, truffle potato", Tags: []string{}, Allergens: []string{}},
					{ID: "course-5", Name: "Dark Chocolate Souffle", Description: "Vanilla bean gelato", Tags: []string{}, Allergens: []string{"Dairy", "Eggs", "Gluten"}},
				},
			},
		},
		Categories: []CategoryConfig{
			{
				ID:   "popular",
				Name: "Popular Items",
				Items: []MenuItem{
					{
						ID:          "truffle-flatbread",
						Name:        "Truffle Mushroom Flatbread",
						Description: "House-made dough, black truffle oil, wild mushrooms, mozzarella, thyme.",
						Price:       "$18.00",
						Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?auto=format&fit=crop&w=800&q=80",
						Tags:        []string{"Vegetarian", "Chef's Favorite"},
						Allergens:   []string{"Gluten", "Dairy"},
						Ingredients: []string{"Pizza dough", "Black truffle oil", "Shiitake mushrooms", "Mozzarella", "Fresh thyme"},
						FoodPairings: []FoodPairing{
							{Name: "Pinot Noir", Description: "Earthy notes complement the truffle"},
							{Name: "Belgian Ale", Description: "Rich maltiness balances mushroom umami"},
						},
						ChefNotes:      "We source our truffles from Piedmont, Italy.",
						IsFeatured:     true,
						IsChefFavorite: true,
						Rating:         4.8,
						ReviewCount:    127,
					},
					{
						ID:            "crispy-calamari",
						Name:          "Crispy Calamari",
						Description:   "Served with spicy marinara and lemon aioli.",
						Price:         "$16.50",
						Image:         "https://images.unsplash.com/photo-1599487488170-d11ec9c172f0?auto=format&fit=crop&w=800&q=80",
						Tags:          []string{"Spicy", "Popular"},
						Allergens:     []string{"Shellfish", "Gluten"},
						IsMostPopular: true,
						IsTopReviewed: true,
						Rating:        4.7,
						ReviewCount:   203,
					},
				},
			},
			{
				ID:   "mains",
				Name: "Main Courses",
				Items: []MenuItem{
					{
						ID:            "pan-seared-salmon",
						Name:          "Pan Seared Salmon",
						Description:   "With quinoa and roasted vegetables.",
						Price:         "$28.00",
						Image:         "https://images.unsplash.com/photo-1485921325833-c519f76c4927?auto=format&fit=crop&w=800&q=80",
						Tags:          []string{"Gluten Free", "Healthy"},
						Allergens:     []string{"Fish"},
						PrepTime:      25,
						Calories:      640,
						IsTopReviewed: true,
						Rating:        4.9,
						ReviewCount:   156,
					},
					{
						ID:          "wagyu-burger",
						Name:        "Wagyu Burger",
						Description: "Brioche bun, aged cheddar, bacon jam.",
						Price:       "$24.00",
						Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=800&q=80",
						Tags:        []string{"Signature", "Popular"},
						Allergens:   []string{"Gluten", "Dairy"},
						ModifierGroups: []ModifierGroup{
							{
								ID:       "burger-size",
								Name:     "Choose Your Size",
								Required: true,
								Options: []ModifierOption{
									{ID: "single", Name: "Single Patty", Price: 24.00},
									{ID: "double", Name: "Double Patty", Price: 29.00, Default: true},
									{ID: "triple", Name: "Triple Patty", Price: 34.00},
								},
							},
							{
								ID:       "burger-addons",
								Name:     "Add-Ons",
								Required: false,
								Options: []ModifierOption{
									{ID: "fried-egg", Name: "Fried Egg", Price: 2.00},
									{ID: "avocado", Name: "Avocado", Price: 2.50},
									{ID: "extra-bacon", Name: "Extra Bacon", Price: 3.00},
								},
							},
						},
						PrepTime:       20,
						Calories:       980,
						IsFeatured:     true,
						IsMostPopular:  true,
						IsChefFavorite: true,
						Rating:         5.0,
						ReviewCount:    342,
					},
					{
						ID:             "lobster-ravioli",
						Name:           "Lobster Ravioli",
						Description:    "Vodka sauce, fresh basil.",
						Price:          "$32.00",
						Image:          "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?auto=format&fit=crop&w=800&q=80",
						Tags:           []string{"Premium", "Chef's Favorite"},
						Allergens:      []string{"Shellfish", "Gluten", "Dairy"},
						IsFeatured:     true,
						IsChefFavorite: true,
						Rating:         4.8,
						ReviewCount:    98,
					},
				},
			},
			{
				ID:   "salads",
				Name: "Salads",
				Items: []MenuItem{
					{
						ID:          "caesar-salad",
						Name:        "Caesar Salad",
						Description: "Romaine, parmesan, croutons.",
						Price:       "$14.00",
						Image:       "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?auto=format&fit=crop&w=800&q=80",
						Tags:        []string{"Classic"},
						Allergens:   []string{"Gluten", "Dairy", "Eggs"},
						ModifierGroups: []ModifierGroup{
							{
								ID:       "salad-protein",
								Name:     "Add Protein",
								Required: false,
								Options: []ModifierOption{
									{ID: "grilled-chicken", Name: "Grilled Chicken", Price: 6.00},
									{ID: "grilled-shrimp", Name: "Grilled Shrimp", Price: 8.00},
								},
							},
						},
					},
					{
						ID:            "kale-quinoa",
						Name:          "Kale & Quinoa",
						Description:   "Lemon vinaigrette, almonds.",
						Price:         "$15.00",
						Image:         "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=800&q=80",
						Tags:          []string{"Vegan", "Gluten Free", "Healthy"},
						Allergens:     []string{"Nuts"},
						IsTopReviewed: true,
						Rating:        4.6,
						ReviewCount:   89,
					},
				},
			},
			{
				ID:   "desserts",
				Name: "Desserts",
				Items: []MenuItem{
					{
						ID:            "tiramisu",
						Name:          "Tiramisu",
						Description:   "Classic Italian coffee-soaked layers.",
						Price:         "$10.00",
						Image:         "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?auto=format&fit=crop&w=800&q=80",
						Tags:          []string{"Classic", "Popular"},
						Allergens:     []string{"Gluten", "Dairy", "Eggs"},
						IsMostPopular: true,
						Rating:        4.9,
						ReviewCount:   178,
					},
					{
						ID:          "cheesecake",
						Name:        "Cheesecake",
						Description: "New York style with berry compote.",
						Price:       "$12.00",
						Image:       "https://images.unsplash.com/photo-1533134242820-3ea26d6f9f09?auto=format&fit=crop&w=800&q=80",
						Tags:        []string{"Signature"},
						Allergens:   []string{"Gluten", "Dairy", "Eggs"},
						Rating:      4.7,
						ReviewCount: 134,
					},
				},
			},
		},
	}
}
