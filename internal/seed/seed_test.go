package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/angelmondragon/factoryops-backend/pkg/config"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
)

func TestDefaultDataset(t *testing.T) {
	c := Default()

	if len(c.Users) != 4 || len(c.Warehouses) != 3 || len(c.Inventory) != 6 {
		t.Fatalf("unexpected sizes users=%d warehouses=%d inventory=%d", len(c.Users), len(c.Warehouses), len(c.Inventory))
	}
	if c.Users[0].Role != enums.RoleOwner || c.Users[0].FullName != "Abdellah Teshome" {
		t.Fatalf("expected owner first, got %+v", c.Users[0])
	}
	if c.Inventory[3].ID != "i4" || c.Inventory[3].Quantity != 120 {
		t.Fatalf("unexpected i4 %+v", c.Inventory[3])
	}
	if c.Attendance[0].IsOpen() || !c.Attendance[1].IsOpen() {
		t.Fatal("expected a1 closed and a2 open")
	}
	if c.Invoices[0].OrderID != "o1" || c.Invoices[0].Status != enums.InvoiceStatusPaid {
		t.Fatalf("unexpected invoice %+v", c.Invoices[0])
	}
	if got := c.Attendance[1].CheckIn.Format("15:04"); got != "08:15" {
		t.Fatalf("expected a2 check in at 08:15, got %s", got)
	}

	other := Default()
	other.Orders[0].Items[0].Quantity = 1
	if c.Orders[0].Items[0].Quantity != 50 {
		t.Fatal("Default must return independent collections")
	}
}

func TestCollectionsHonoursConfig(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		c, err := Collections(config.SeedConfig{Enabled: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Users) != 0 {
			t.Fatalf("expected empty collections, got %d users", len(c.Users))
		}
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		doc := `{"users":[{"id":"u9","full_name":"Solo Owner","role":"owner","hourly_rate":null}],
			"inventory":[{"id":"i9","warehouse_id":"w1","item_name":"Cocoa","quantity":7,"unit":"kg","type":"raw_material","last_updated":"2024-01-02"}]}`
		if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
			t.Fatalf("write seed: %v", err)
		}

		c, err := Collections(config.SeedConfig{Enabled: true, File: path})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Users) != 1 || c.Users[0].ID != "u9" || c.Users[0].HourlyRate.Valid {
			t.Fatalf("unexpected users %+v", c.Users)
		}
		if c.Inventory[0].LastUpdated.String() != "2024-01-02" {
			t.Fatalf("unexpected inventory %+v", c.Inventory[0])
		}
	})

	t.Run("bad file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
			t.Fatalf("write seed: %v", err)
		}
		if _, err := Collections(config.SeedConfig{Enabled: true, File: path}); err == nil {
			t.Fatal("expected decode error")
		}
	})

	t.Run("default", func(t *testing.T) {
		c, err := Collections(config.SeedConfig{Enabled: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.Orders) != 2 || c.Orders[1].Status != enums.OrderStatusProcessing {
			t.Fatalf("unexpected orders %+v", c.Orders)
		}
	})
}
