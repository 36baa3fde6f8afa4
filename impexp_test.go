package stockpile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExportImportRoundTrip(t *testing.T) {
	for _, ext := range []string{".csv", ".json", ".xml", ".xlsx"} {
		t.Run(ext, func(t *testing.T) {
			src := testInventory(t, "2024-01-01")
			mustBuy(t, src, "mango", "2.5", 4, "2024-01-01", "2024-01-10")
			mustBuy(t, src, "kiwi", "0.75", 10, "2024-01-02", "2024-01-08")

			file := filepath.Join(t.TempDir(), "export"+ext)
			if err := src.ExportBought(file); err != nil {
				t.Fatalf("ExportBought(%s) failed: %v", ext, err)
			}

			dst := testInventory(t, "2024-01-01")
			ids, err := dst.ImportBought(file, "")
			if err != nil {
				t.Fatalf("ImportBought(%s) failed: %v", ext, err)
			}
			if len(ids) != 2 {
				t.Fatalf("imported %d lots, want 2", len(ids))
			}

			want, _ := LoadBoughtLedger(src.Config().BoughtFile)
			got, err := LoadBoughtLedger(dst.Config().BoughtFile)
			if err != nil {
				t.Fatal(err)
			}
			if got.Len() != want.Len() {
				t.Fatalf("imported ledger has %d lots, want %d", got.Len(), want.Len())
			}
			gl, wl := got.Lots(), want.Lots()
			for i := range gl {
				if !gl[i].Equal(wl[i]) {
					t.Errorf("lot %d = %+v, want %+v", i, gl[i], wl[i])
				}
			}
		})
	}
}

func TestImportAssignsFreshIDs(t *testing.T) {
	inv := testInventory(t, "2024-01-01")
	mustBuy(t, inv, "mango", "2.5", 4, "2024-01-01", "2024-01-10")
	mustBuy(t, inv, "kiwi", "0.75", 10, "2024-01-02", "2024-01-08")

	file := filepath.Join(t.TempDir(), "export.json")
	if err := inv.ExportBought(file); err != nil {
		t.Fatal(err)
	}

	// importing into the same inventory must not collide with ids 1 and 2
	ids, err := inv.ImportBought(file, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 4 {
		t.Errorf("imported ids = %v, want [3 4]", ids)
	}
	ledger, err := LoadBoughtLedger(inv.Config().BoughtFile)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 4 {
		t.Errorf("ledger has %d lots after re-import, want 4", ledger.Len())
	}
}

func TestImportJSONPathQuery(t *testing.T) {
	doc := `{
	  "supplier": "fruitco",
	  "deliveries": [
	    {
	      "day": "2024-01-02",
	      "products": [
	        {"name": "mango", "buy_price": "2.5", "quantity": 4,
	         "buy_date": "2024-01-02", "expiration_date": "2024-01-10"}
	      ]
	    }
	  ]
	}`
	file := filepath.Join(t.TempDir(), "delivery.json")
	if err := os.WriteFile(file, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	inv := testInventory(t, "2024-01-01")
	ids, err := inv.ImportBought(file, "$.deliveries[0].products")
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 {
		t.Fatalf("imported %d lots, want 1", len(ids))
	}

	lots, _, err := inv.Bought("mango", "")
	if err != nil {
		t.Fatal(err)
	}
	want := NewBoughtLot(1, "mango", decimal.RequireFromString("2.5"), 4, "2024-01-02", "2024-01-10")
	if len(lots) != 1 || !lots[0].Equal(want) {
		t.Errorf("imported lot = %+v, want %+v", lots, want)
	}
}

func TestImportNestedJSONWithoutQueryFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested.json")
	if err := os.WriteFile(file, []byte(`{"products": []}`), 0644); err != nil {
		t.Fatal(err)
	}
	inv := testInventory(t, "2024-01-01")
	if _, err := inv.ImportBought(file, ""); err == nil {
		t.Error("importing a non-list JSON document without a query should fail")
	}
}

func TestImportUnsupportedExtension(t *testing.T) {
	inv := testInventory(t, "2024-01-01")
	_, err := inv.ImportBought("products.txt", "")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("importing .txt error = %v, want ErrUnsupportedFormat", err)
	}
	if err := inv.ExportBought("products.txt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("exporting .txt error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestImportRejectsInvalidRecords(t *testing.T) {
	header := "id;name;buy_price;quantity;buy_date;expiration_date"
	tests := []struct {
		name string
		row  string
	}{
		{"negative price", "1;mango;-2.5;4;2024-01-01;2024-01-10"},
		{"zero quantity", "1;mango;2.5;0;2024-01-01;2024-01-10"},
		{"expires before buy", "1;mango;2.5;4;2024-01-05;2024-01-01"},
		{"all checks at once", "1;mango;-2.5;0;2024-01-05;2024-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "invalid.csv")
			if err := os.WriteFile(file, []byte(header+"\n"+tt.row+"\n"), 0644); err != nil {
				t.Fatal(err)
			}

			inv := testInventory(t, "2024-01-01")
			if _, err := inv.ImportBought(file, ""); err == nil {
				t.Fatal("importing an invalid record should fail")
			}
			ledger, err := LoadBoughtLedger(inv.Config().BoughtFile)
			if err != nil {
				t.Fatal(err)
			}
			if ledger.Len() != 0 {
				t.Errorf("rejected import left %d lots in the ledger", ledger.Len())
			}
		})
	}
}

func TestReadCSVTableRaggedRows(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ragged.csv")
	content := "id;name\n1;mango\n2\n3;kiwi;extra\n"
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	records, err := readCSVTable(file)
	if err != nil {
		t.Fatalf("readCSVTable failed on ragged rows: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("read %d records, want 3", len(records))
	}
	if got := records[1]["name"]; got != "" {
		t.Errorf("missing cell read as %q, want empty", got)
	}
	if got := records[2]["name"]; got != "kiwi" {
		t.Errorf("record with a surplus cell has name %q, want kiwi", got)
	}
}

func TestImportMalformedRecordWritesNothing(t *testing.T) {
	doc := `[
	  {"name": "mango", "buy_price": "2.5", "quantity": 4,
	   "buy_date": "2024-01-02", "expiration_date": "2024-01-10"},
	  {"name": "kiwi", "buy_price": "not a price", "quantity": 1,
	   "buy_date": "2024-01-02", "expiration_date": "2024-01-10"}
	]`
	file := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(file, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	inv := testInventory(t, "2024-01-01")
	if _, err := inv.ImportBought(file, ""); err == nil {
		t.Fatal("importing a malformed record should fail")
	}
	ledger, err := LoadBoughtLedger(inv.Config().BoughtFile)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 0 {
		t.Errorf("failed import left %d lots in the ledger", ledger.Len())
	}
}
