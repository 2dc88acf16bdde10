package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"wishcart/internal/model"
)

// seedNamespace scopes the ids derived for products without a UUID.
var seedNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("wishcart/products"))

// SeedProduct is one catalog item in the seed document. SalePrice accepts
// both JSON numbers and strings.
type SeedProduct struct {
	ID          string          `json:"id"`
	ProductName string          `json:"productName"`
	ProductLink string          `json:"productLink"`
	ImageLink   string          `json:"imageLink"`
	SalePrice   decimal.Decimal `json:"salePrice"`
}

// readSource loads the seed document from an http(s) URL or a local file.
func readSource(ctx context.Context, client *http.Client, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch seed document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed source returned status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return data, nil
}

// parseProducts decodes the seed document. Items without a name are skipped
// and counted.
func parseProducts(data []byte) ([]model.Product, int, error) {
	var items []SeedProduct
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, 0, fmt.Errorf("parse seed document: %w", err)
	}

	products := make([]model.Product, 0, len(items))
	skipped := 0
	for _, item := range items {
		name := strings.TrimSpace(item.ProductName)
		if name == "" {
			skipped++
			continue
		}
		products = append(products, model.Product{
			ID:          productID(item.ID, name),
			ProductName: name,
			ProductLink: item.ProductLink,
			ImageLink:   item.ImageLink,
			SalePrice:   item.SalePrice.Round(2),
		})
	}
	return products, skipped, nil
}

// productID keeps UUID ids and derives a stable one otherwise, so reseeding
// the same document updates rows instead of duplicating them.
func productID(raw, name string) uuid.UUID {
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}
	key := raw
	if key == "" {
		key = name
	}
	return uuid.NewSHA1(seedNamespace, []byte(key))
}
