// internal/data/models.go
package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Models groups the database-backed sources of the application.
// It is only built when a database DSN is configured.
type Models struct {
	Tools ToolModel // Reads the tool catalog from the tools table
}

// NewModels constructs a Models value wired up to the given connection pool.
func NewModels(db *sql.DB) Models {
	return Models{
		Tools: ToolModel{DB: db},
	}
}

// ToolModel wraps a *sql.DB connection and loads tool billing policies.
//
// Expected schema:
//
//	CREATE TABLE tools (
//	    code           text PRIMARY KEY,
//	    tool_type      text NOT NULL,
//	    brand          text NOT NULL,
//	    daily_charge   numeric(10,2) NOT NULL CHECK (daily_charge >= 0),
//	    weekday_charge boolean NOT NULL,
//	    weekend_charge boolean NOT NULL,
//	    holiday_charge boolean NOT NULL
//	);
type ToolModel struct {
	DB *sql.DB // Shared database connection pool
}

// Catalog reads every row of the tools table into an immutable Catalog.
// Rows are read in insertion order so a later duplicate code wins, the same
// rule the CSV loader applies.
func (m ToolModel) Catalog(ctx context.Context) (*Catalog, error) {
	query := `
		SELECT code, tool_type, brand, daily_charge, weekday_charge, weekend_charge, holiday_charge
		FROM tools
		ORDER BY ctid`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := m.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	// Always close the result set so the connection goes back to the pool.
	defer rows.Close()

	var tools []Tool
	for rows.Next() {
		var t Tool
		err := rows.Scan(
			&t.Code,
			&t.Type,
			&t.Brand,
			&t.DailyCharge, // decimal.Decimal implements sql.Scanner
			&t.WeekdayCharge,
			&t.WeekendCharge,
			&t.HolidayCharge,
		)
		if err != nil {
			return nil, err
		}
		if err := ValidateDailyCharge(t.DailyCharge); err != nil {
			return nil, fmt.Errorf("tool %s: daily charge %s %w", t.Code, t.DailyCharge, err)
		}
		tools = append(tools, t)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return NewCatalog(tools...), nil
}
