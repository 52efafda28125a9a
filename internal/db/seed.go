package db

import (
	"database/sql"
	"fmt"
)

// FixtureSource is the import source recorded for development fixtures.
const FixtureSource = "fixtures"

// SeedFixtures replaces the store cache with a small development data set
// covering known and unknown cities, cities without districts and
// unclassified stores.
func SeedFixtures(database *sql.DB) error {
	stores := []struct{ name, address, tel, city, district string }{
		{"大安門市", "台北市大安區復興南路一段1號", "02-2700-0001", "台北市", "大安區"},
		{"信義門市", "台北市信義區松仁路2號", "02-2720-0002", "台北市", "信義區"},
		{"板橋門市", "新北市板橋區文化路3號", "02-2960-0003", "新北市", "板橋區"},
		{"前鎮門市", "高雄市前鎮區中華五路4號", "07-330-0004", "高雄市", "前鎮區"},
		{"左營門市", "高雄市左營區博愛二路5號", "07-550-0005", "高雄市", "左營區"},
		{"台南門市", "台南市東區長榮路6號", "06-200-0006", "台南市", ""},
		{"基隆門市", "基隆市仁愛區愛一路7號", "02-2420-0007", "基隆市", "仁愛區"},
		{"馬公門市", "澎湖縣馬公市中正路8號", "06-927-0008", "澎湖縣", "馬公市"},
		{"網路門市", "線上服務", "0800-000-009", "", ""},
	}

	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("seed stores: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM stores"); err != nil {
		return fmt.Errorf("seed stores: %w", err)
	}
	for i, s := range stores {
		if _, err := tx.Exec(
			"INSERT INTO stores (position, name, address, tel, city, district) VALUES (?, ?, ?, ?, ?, ?)",
			i, s.name, s.address, s.tel, s.city, s.district,
		); err != nil {
			return fmt.Errorf("seed stores: %w", err)
		}
	}
	if _, err := tx.Exec(
		"INSERT INTO imports (source, record_count) VALUES (?, ?)",
		FixtureSource, len(stores),
	); err != nil {
		return fmt.Errorf("seed imports: %w", err)
	}

	return tx.Commit()
}
