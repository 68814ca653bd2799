package customize

import (
	"fmt"
	"strings"

	"menustudio/internal/menu"
	"menustudio/internal/price"
)

// Session holds the ephemeral selection state for one item being
// configured for purchase. It is built per item-in-focus and discarded
// after the add-to-cart decision; nothing here touches the config tree.
type Session struct {
	item menu.MenuItem

	// single holds the selected option id per required group; the empty
	// string means no selection yet. multi holds the selected option
	// ids per optional group.
	single map[string]string
	multi  map[string][]string

	quantity            int
	specialInstructions string
	errors              map[string]string
}

// NewSession builds the initial selection state: required groups start
// on their default-flagged option (first in list order wins) or
// unselected, optional groups start with the default option alone or
// empty.
func NewSession(item menu.MenuItem) *Session {
	s := &Session{
		item:     item,
		single:   make(map[string]string),
		multi:    make(map[string][]string),
		quantity: 1,
		errors:   make(map[string]string),
	}

	for _, group := range item.ModifierGroups {
		defaultID := ""
		for _, opt := range group.Options {
			if opt.Default {
				defaultID = opt.ID
				break
			}
		}
		if group.Required {
			s.single[group.ID] = defaultID
		} else if defaultID != "" {
			s.multi[group.ID] = []string{defaultID}
		} else {
			s.multi[group.ID] = []string{}
		}
	}
	return s
}

// SelectOption replaces the selection of a required group. Any
// previous choice is discarded.
func (s *Session) SelectOption(groupID, optionID string) {
	s.single[groupID] = optionID
}

// ToggleOption adds the option to an optional group's selection when
// absent and removes it when present.
func (s *Session) ToggleOption(groupID, optionID string) {
	current := s.multi[groupID]
	for i, id := range current {
		if id == optionID {
			next := make([]string, 0, len(current)-1)
			next = append(next, current[:i]...)
			s.multi[groupID] = append(next, current[i+1:]...)
			return
		}
	}
	next := make([]string, 0, len(current)+1)
	next = append(next, current...)
	s.multi[groupID] = append(next, optionID)
}

// Quantity returns the current quantity, always at least 1.
func (s *Session) Quantity() int {
	return s.quantity
}

// SetQuantity clamps to a minimum of 1; decrementing past 1 is a no-op.
func (s *Session) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.quantity = quantity
}

// SpecialInstructions returns the free-text note for the kitchen.
func (s *Session) SpecialInstructions() string {
	return s.specialInstructions
}

// SetSpecialInstructions replaces the free-text note.
func (s *Session) SetSpecialInstructions(text string) {
	s.specialInstructions = text
}

// Selected reports the current selection for a group: the single
// option id for required groups, the selection list for optional ones.
func (s *Session) Selected(groupID string) (string, []string) {
	return s.single[groupID], s.multi[groupID]
}

// Validate checks that every required group has a selection. It
// replaces the whole error map, so groups that now validate lose any
// stale message. Returns true iff no group produced an error.
func (s *Session) Validate() bool {
	next := make(map[string]string)
	for _, group := range s.item.ModifierGroups {
		if !group.Required {
			continue
		}
		if s.single[group.ID] == "" {
			next[group.ID] = fmt.Sprintf("Please select %s.", strings.ToLower(group.Name))
		}
	}
	s.errors = next
	return len(next) == 0
}

// Errors returns the validation message per failing group id.
func (s *Session) Errors() map[string]string {
	return s.errors
}

// ResetError clears one group's error without re-running validation.
func (s *Session) ResetError(groupID string) {
	delete(s.errors, groupID)
}

// ResetAllErrors clears every recorded error.
func (s *Session) ResetAllErrors() {
	s.errors = make(map[string]string)
}

// Price recomputes the pricing breakdown from scratch. A required
// group whose name contains "size" replaces the base price with the
// selected option's price instead of adding to it; if several such
// groups exist the last one in group order wins. Every other selected
// option adds its price. Unknown option ids contribute nothing.
func (s *Session) Price() (base, modifierTotal, total float64) {
	base = price.Parse(s.item.Price)

	for _, group := range s.item.ModifierGroups {
		if group.Required {
			selection := s.single[group.ID]
			if selection == "" {
				continue
			}
			opt, found := findOption(group.Options, selection)
			isSizeGroup := strings.Contains(strings.ToLower(group.Name), "size")
			if isSizeGroup && found {
				base = opt.Price
				continue
			}
			if found {
				modifierTotal += opt.Price
			}
			continue
		}

		for _, id := range s.multi[group.ID] {
			if opt, found := findOption(group.Options, id); found {
				modifierTotal += opt.Price
			}
		}
	}

	total = (base + modifierTotal) * float64(s.quantity)
	return base, modifierTotal, total
}

// TotalPrice is the grand total for the current selection state.
func (s *Session) TotalPrice() float64 {
	_, _, total := s.Price()
	return total
}

func findOption(options []menu.ModifierOption, id string) (menu.ModifierOption, bool) {
	for _, opt := range options {
		if opt.ID == id {
			return opt, true
		}
	}
	return menu.ModifierOption{}, false
}
