package customize

import (
	"testing"

	"menustudio/internal/menu"
)

func itemWithGroups(price string, groups ...menu.ModifierGroup) menu.MenuItem {
	item := menu.NewEmptyItem("item-under-test")
	item.Price = price
	item.ModifierGroups = groups
	return item
}

func TestRequiredModifierAddsToBasePrice(t *testing.T) {
	item := itemWithGroups("$10.00", menu.ModifierGroup{
		ID:       "sauce",
		Name:     "Sauce",
		Required: true,
		Options: []menu.ModifierOption{
			{ID: "classic", Name: "Classic", Price: 0},
			{ID: "truffle", Name: "Truffle", Price: 2.50},
		},
	})

	session := NewSession(item)
	session.SelectOption("sauce", "truffle")
	session.SetQuantity(2)

	if total := session.TotalPrice(); total != 25.00 {
		t.Fatalf("expected (10.00+2.50)*2 = 25.00, got %v", total)
	}
}

func TestSizeGroupReplacesBasePrice(t *testing.T) {
	item := itemWithGroups("$10.00", menu.ModifierGroup{
		ID:       "size",
		Name:     "Choose Your Size",
		Required: true,
		Options: []menu.ModifierOption{
			{ID: "small", Name: "Small", Price: 8.99},
			{ID: "regular", Name: "Regular", Price: 12.99, Default: true},
			{ID: "large", Name: "Large", Price: 22.99},
		},
	})

	session := NewSession(item)
	session.SelectOption("size", "large")

	base, modifierTotal, total := session.Price()
	if base != 22.99 {
		t.Fatalf("size selection must replace the base price, got base %v", base)
	}
	if modifierTotal != 0 {
		t.Fatalf("size selection must not also count as a modifier, got %v", modifierTotal)
	}
	if total != 22.99 {
		t.Fatalf("expected 22.99, not 10.00+22.99; got %v", total)
	}
}

func TestSizeReplacementCombinesWithAddons(t *testing.T) {
	item := itemWithGroups("$24.00",
		menu.ModifierGroup{
			ID:       "size",
			Name:     "Choose Your Size",
			Required: true,
			Options: []menu.ModifierOption{
				{ID: "single", Name: "Single", Price: 24.00, Default: true},
				{ID: "double", Name: "Double", Price: 29.00},
			},
		},
		menu.ModifierGroup{
			ID:       "addons",
			Name:     "Add-Ons",
			Required: false,
			Options: []menu.ModifierOption{
				{ID: "egg", Name: "Fried Egg", Price: 2.00},
				{ID: "bacon", Name: "Extra Bacon", Price: 3.00},
			},
		},
	)

	session := NewSession(item)
	session.SelectOption("size", "double")
	session.ToggleOption("addons", "egg")
	session.ToggleOption("addons", "bacon")
	session.SetQuantity(2)

	if total := session.TotalPrice(); total != 68.00 {
		t.Fatalf("expected (29.00+2.00+3.00)*2 = 68.00, got %v", total)
	}
}

func TestDefaultSelectionInitialization(t *testing.T) {
	item := itemWithGroups("$12.00",
		menu.ModifierGroup{
			ID:       "required-group",
			Name:     "Bread",
			Required: true,
			Options: []menu.ModifierOption{
				{ID: "white", Name: "White"},
				{ID: "sourdough", Name: "Sourdough", Default: true},
			},
		},
		menu.ModifierGroup{
			ID:       "optional-group",
			Name:     "Extras",
			Required: false,
			Options: []menu.ModifierOption{
				{ID: "pickles", Name: "Pickles", Default: true},
				{ID: "onions", Name: "Onions"},
			},
		},
		menu.ModifierGroup{
			ID:       "bare-group",
			Name:     "Side",
			Required: false,
			Options: []menu.ModifierOption{
				{ID: "fries", Name: "Fries"},
			},
		},
	)

	session := NewSession(item)

	single, _ := session.Selected("required-group")
	if single != "sourdough" {
		t.Fatalf("required group should start on its default, got %q", single)
	}
	_, multi := session.Selected("optional-group")
	if len(multi) != 1 || multi[0] != "pickles" {
		t.Fatalf("optional group should start with the default alone, got %v", multi)
	}
	_, bare := session.Selected("bare-group")
	if bare == nil || len(bare) != 0 {
		t.Fatalf("group without default should start empty, got %v", bare)
	}
}

func TestDuplicateDefaultFirstInListOrderWins(t *testing.T) {
	item := itemWithGroups("$9.00", menu.ModifierGroup{
		ID:       "broth",
		Name:     "Broth",
		Required: true,
		Options: []menu.ModifierOption{
			{ID: "miso", Name: "Miso", Default: true},
			{ID: "tonkotsu", Name: "Tonkotsu", Default: true},
		},
	})

	single, _ := NewSession(item).Selected("broth")
	if single != "miso" {
		t.Fatalf("first default in list order should win, got %q", single)
	}
}

func TestSelectOptionReplacesPreviousChoice(t *testing.T) {
	item := itemWithGroups("$9.00", menu.ModifierGroup{
		ID:       "spice",
		Name:     "Spice Level",
		Required: true,
		Options: []menu.ModifierOption{
			{ID: "mild", Name: "Mild"},
			{ID: "hot", Name: "Hot", Price: 1.00},
		},
	})

	session := NewSession(item)
	session.SelectOption("spice", "mild")
	session.SelectOption("spice", "hot")

	single, _ := session.Selected("spice")
	if single != "hot" {
		t.Fatalf("single-choice selection should be replaced, got %q", single)
	}
}

func TestToggleOptionAddsAndRemoves(t *testing.T) {
	item := itemWithGroups("$9.00", menu.ModifierGroup{
		ID:       "extras",
		Name:     "Extras",
		Required: false,
		Options: []menu.ModifierOption{
			{ID: "cheese", Name: "Cheese", Price: 1.50},
		},
	})

	session := NewSession(item)
	session.ToggleOption("extras", "cheese")
	if _, multi := session.Selected("extras"); len(multi) != 1 {
		t.Fatalf("toggle should add, got %v", multi)
	}
	session.ToggleOption("extras", "cheese")
	if _, multi := session.Selected("extras"); len(multi) != 0 {
		t.Fatalf("second toggle should remove, got %v", multi)
	}
}

func TestQuantityNeverDropsBelowOne(t *testing.T) {
	session := NewSession(menu.NewEmptyItem("plain"))

	session.SetQuantity(0)
	if session.Quantity() != 1 {
		t.Fatalf("quantity clamped to 1, got %d", session.Quantity())
	}
	session.SetQuantity(-3)
	if session.Quantity() != 1 {
		t.Fatalf("quantity clamped to 1, got %d", session.Quantity())
	}
	session.SetQuantity(4)
	if session.Quantity() != 4 {
		t.Fatalf("expected 4, got %d", session.Quantity())
	}
}

func TestValidateReportsMissingRequiredSelection(t *testing.T) {
	item := itemWithGroups("$9.00", menu.ModifierGroup{
		ID:       "size-group",
		Name:     "Choose Your Size",
		Required: true,
		Options: []menu.ModifierOption{
			{ID: "small", Name: "Small", Price: 8.00},
		},
	})

	session := NewSession(item)
	if session.Validate() {
		t.Fatalf("validation should fail without a selection")
	}

	errs := session.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
	if errs["size-group"] != "Please select choose your size." {
		t.Fatalf("unexpected message: %q", errs["size-group"])
	}

	// Selecting and revalidating clears the stale error.
	session.SelectOption("size-group", "small")
	if !session.Validate() {
		t.Fatalf("validation should pass after selecting")
	}
	if len(session.Errors()) != 0 {
		t.Fatalf("errors should be cleared, got %v", session.Errors())
	}
}

func TestResetErrors(t *testing.T) {
	item := itemWithGroups("$9.00",
		menu.ModifierGroup{ID: "a", Name: "A", Required: true, Options: []menu.ModifierOption{{ID: "x", Name: "X"}}},
		menu.ModifierGroup{ID: "b", Name: "B", Required: true, Options: []menu.ModifierOption{{ID: "y", Name: "Y"}}},
	)

	session := NewSession(item)
	session.Validate()
	if len(session.Errors()) != 2 {
		t.Fatalf("expected two errors, got %v", session.Errors())
	}

	session.ResetError("a")
	if _, exists := session.Errors()["a"]; exists {
		t.Fatalf("error for group a should be cleared")
	}
	if _, exists := session.Errors()["b"]; !exists {
		t.Fatalf("error for group b should survive a single reset")
	}

	session.ResetAllErrors()
	if len(session.Errors()) != 0 {
		t.Fatalf("all errors should be cleared, got %v", session.Errors())
	}
}

func TestUnknownOptionIDContributesNothing(t *testing.T) {
	item := itemWithGroups("$10.00", menu.ModifierGroup{
		ID:       "sauce",
		Name:     "Sauce",
		Required: true,
		Options:  []menu.ModifierOption{{ID: "classic", Name: "Classic", Price: 2.00}},
	})

	session := NewSession(item)
	session.SelectOption("sauce", "ghost-option")

	if total := session.TotalPrice(); total != 10.00 {
		t.Fatalf("unknown option should price as zero, got %v", total)
	}
}
