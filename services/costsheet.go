package services

import "fmt"

// LineItem is one entry in the in-progress cost estimate. The derived
// DiscountedCost, Total and PreDiscountTotal fields are always recomputed
// from UnitCost, Discount and Quantity, never stored independently.
type LineItem struct {
	ID               int
	Manufacturer     string
	ProductType      string
	ProductCode      string
	Description      string
	UnitCost         float64
	Discount         float64
	DiscountedCost   float64
	Quantity         int
	Total            float64
	PreDiscountTotal float64
	Group            string
	Supplier         string
}

// ItemGroup is one named section of the estimate with its own subtotals.
type ItemGroup struct {
	Name                string
	Items               []LineItem
	Subtotal            float64
	PreDiscountSubtotal float64
}

// CostSheet holds the session-scoped estimate state: the ordered line items,
// the project name and the set of groups seen so far. It is owned by the
// caller for the lifetime of the session; nothing in this package keeps a
// reference to it.
type CostSheet struct {
	ProjectName string

	items  []LineItem
	groups []string
	nextID int
}

func NewCostSheet() *CostSheet {
	return &CostSheet{nextID: 1}
}

// Items returns the line items in insertion order.
func (s *CostSheet) Items() []LineItem {
	return s.items
}

// Groups returns every group name registered so far, in first-seen order.
// The list always contains the group of every line item on the sheet.
func (s *CostSheet) Groups() []string {
	return s.groups
}

// Add puts a product on the sheet. If an item with the same manufacturer,
// product type, product code, group and supplier already exists, its
// quantity is incremented instead of appending a duplicate row.
func (s *CostSheet) Add(p Product, quantity int, group, supplier string, discount float64) {
	if quantity < 1 {
		quantity = 1
	}
	s.RegisterGroup(group)

	for i := range s.items {
		item := &s.items[i]
		if item.Manufacturer == p.Manufacturer &&
			item.ProductType == p.ProductType &&
			item.ProductCode == p.ProductCode &&
			item.Group == group &&
			item.Supplier == supplier {
			item.Quantity += quantity
			recalcItem(item)
			return
		}
	}

	item := LineItem{
		ID:           s.nextID,
		Manufacturer: p.Manufacturer,
		ProductType:  p.ProductType,
		ProductCode:  p.ProductCode,
		Description:  p.Description,
		UnitCost:     p.UnitCost,
		Discount:     discount,
		Quantity:     quantity,
		Group:        group,
		Supplier:     supplier,
	}
	recalcItem(&item)
	s.nextID++
	s.items = append(s.items, item)
}

// SetQuantity changes the quantity of one line item and recomputes its
// totals. Quantities below 1 are rejected.
func (s *CostSheet) SetQuantity(id, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			recalcItem(&s.items[i])
			return nil
		}
	}
	return fmt.Errorf("no line item with id %d", id)
}

// Remove deletes the line items with the given IDs. Unknown IDs are ignored.
func (s *CostSheet) Remove(ids []int) {
	drop := make(map[int]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := s.items[:0]
	for _, item := range s.items {
		if !drop[item.ID] {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// Clear empties the sheet. Known groups and the project name survive so the
// user can keep working with the same section labels.
func (s *CostSheet) Clear() {
	s.items = nil
}

// RegisterGroup records a group label if it is not already known.
func (s *CostSheet) RegisterGroup(group string) {
	if group == "" {
		return
	}
	for _, g := range s.groups {
		if g == group {
			return
		}
	}
	s.groups = append(s.groups, group)
}

// Totals recomputes the sheet aggregates from the current items.
func (s *CostSheet) Totals() SheetTotals {
	return CalcSheetTotals(s.items)
}

// Grouped partitions the line items by group, preserving the order in which
// groups first appear on the sheet. Each partition carries its own subtotal
// and pre-discount subtotal.
func (s *CostSheet) Grouped() []ItemGroup {
	index := make(map[string]int)
	var groups []ItemGroup
	for _, item := range s.items {
		i, ok := index[item.Group]
		if !ok {
			i = len(groups)
			index[item.Group] = i
			groups = append(groups, ItemGroup{Name: item.Group})
		}
		groups[i].Items = append(groups[i].Items, item)
		groups[i].Subtotal += item.Total
		groups[i].PreDiscountSubtotal += item.PreDiscountTotal
	}
	return groups
}

func recalcItem(item *LineItem) {
	item.DiscountedCost = DiscountedCost(item.UnitCost, item.Discount)
	item.Total = item.DiscountedCost * float64(item.Quantity)
	item.PreDiscountTotal = item.UnitCost * float64(item.Quantity)
}
