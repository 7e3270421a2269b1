//go:build e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"catalog-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type linkRow struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

type fabricRow struct {
	FabricType string `json:"fabric_type"`
	Percentage int    `json:"percentage"`
}

// UpsertProduct writes a product row the way the product service would.
func UpsertProduct(t *testing.T, db DBLike, p shared.ProductSnapshot) {
	t.Helper()

	links := make([]linkRow, 0, len(p.Links))
	for _, l := range p.Links {
		links = append(links, linkRow{Type: string(l.Type), ID: l.ID, Name: l.Name})
	}
	fabrics := make([]fabricRow, 0, len(p.FabricComposition))
	for _, f := range p.FabricComposition {
		fabrics = append(fabrics, fabricRow{FabricType: string(f.FabricType), Percentage: f.Percentage})
	}
	linksJSON, err := json.Marshal(links)
	require.NoError(t, err)
	fabricsJSON, err := json.Marshal(fabrics)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), `
		INSERT INTO products (id, product_number, links, fabric_composition)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
		    product_number = EXCLUDED.product_number,
		    links = EXCLUDED.links,
		    fabric_composition = EXCLUDED.fabric_composition,
		    updated_at = now()`,
		p.ProductID, p.ProductNumber, linksJSON, fabricsJSON)
	require.NoError(t, err)
}

// CountEvents returns how many events are stored for an offer.
func CountEvents(t *testing.T, db DBLike, offerID string) int {
	t.Helper()
	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM offer_events WHERE offer_id = $1", offerID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
