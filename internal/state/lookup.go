package state

import "github.com/angelmondragon/factoryops-backend/pkg/models"

func (s *State) UserIndex(id string) int {
	for i, u := range s.Users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) User(id string) (models.User, bool) {
	if i := s.UserIndex(id); i >= 0 {
		return s.Users[i], true
	}
	return models.User{}, false
}

func (s *State) WarehouseIndex(id string) int {
	for i, w := range s.Warehouses {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) Warehouse(id string) (models.Warehouse, bool) {
	if i := s.WarehouseIndex(id); i >= 0 {
		return s.Warehouses[i], true
	}
	return models.Warehouse{}, false
}

func (s *State) InventoryItem(id string) (models.InventoryItem, bool) {
	for _, item := range s.Inventory {
		if item.ID == id {
			return item, true
		}
	}
	return models.InventoryItem{}, false
}

func (s *State) Customer(id string) (models.Customer, bool) {
	for _, c := range s.Customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (s *State) OrderIndex(id string) int {
	for i, o := range s.Orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) Order(id string) (models.Order, bool) {
	if i := s.OrderIndex(id); i >= 0 {
		return s.Orders[i].Clone(), true
	}
	return models.Order{}, false
}

func (s *State) InvoiceIndex(id string) int {
	for i, inv := range s.Invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}

func (s *State) Invoice(id string) (models.Invoice, bool) {
	if i := s.InvoiceIndex(id); i >= 0 {
		return s.Invoices[i], true
	}
	return models.Invoice{}, false
}

// InvoiceForOrder returns the invoice billing orderID, if any.
func (s *State) InvoiceForOrder(orderID string) (models.Invoice, bool) {
	for _, inv := range s.Invoices {
		if inv.OrderID == orderID {
			return inv, true
		}
	}
	return models.Invoice{}, false
}

// OrderWarehouse resolves the warehouse an invoice is scoped by.
func (s *State) OrderWarehouse(orderID string) string {
	if i := s.OrderIndex(orderID); i >= 0 {
		return s.Orders[i].WarehouseID
	}
	return ""
}
