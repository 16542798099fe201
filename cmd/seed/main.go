package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"dairy_admin/internal/config"
	"dairy_admin/internal/sample"
	"dairy_admin/internal/storage"
	"dairy_admin/internal/store"
)

// Seeds durable storage with the sample collections so a fresh install
// has data to show. Existing collections are overwritten.
func main() {
	fmt.Println("Seeding dairy admin storage...")

	// Load configuration
	cfg := config.Load()

	var blob storage.Blob
	var err error
	if cfg.StorageBackend == "redis" {
		blob, err = storage.NewRedisBlob(cfg.RedisURL, "dairy_admin")
	} else {
		blob, err = storage.NewFileBlob(cfg.DataDir)
	}
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	for name, recs := range sample.ByEntity() {
		st := store.NewDurableStore(blob, name)
		st.ReplaceAll(recs)
		fmt.Printf("  %s: %d records\n", name, len(recs))
	}

	// Verify one collection round-trips
	if data, err := blob.Read(context.Background(), "products"); err == nil {
		var check []any
		if err := json.Unmarshal(data, &check); err != nil {
			log.Fatal("Seeded products collection does not parse:", err)
		}
	}

	fmt.Println("Done.")
}
