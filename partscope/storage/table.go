package storage

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/partscope/partscope/partscope"
	"github.com/partscope/partscope/partscope/storage/sqlbuilder"
)

// DefaultTable is the catalog table name used when none is configured.
const DefaultTable = "devices"

// Columns is the canonical catalog column order shared by every SQL backend.
var Columns = []string{
	"did", "fname", "manf", "partno", "package", "packagemanfname",
	"mounting", "channel", "config", "material", "part_status",
	"discoveree_package_cat1", "discoveree_package_cat2", "auto",
	"vds", "vgs", "vthtyp", "rthja", "cisstyp",
	"rdson1max", "rdson2max", "rdson3max", "rdson4max", "rdsontyp10vgs25ta",
}

// first numeric column in Columns
const numericFrom = 14

var tableNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func ValidateTable(table string) error {
	if !tableNameRe.MatchString(table) {
		return partscope.ConfigError("table", fmt.Sprintf("invalid table name %q (must match %s)", table, tableNameRe.String()))
	}
	return nil
}

// SelectSQL returns the catalog query for table, ordered by identifier.
func SelectSQL(table string) (string, error) {
	if err := ValidateTable(table); err != nil {
		return "", err
	}
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY did", strings.Join(Columns, ", "), table), nil
}

// CreateTableSQL returns DDL that both SQLite and Postgres accept.
func CreateTableSQL(table string) (string, error) {
	if err := ValidateTable(table); err != nil {
		return "", err
	}
	defs := make([]string, 0, len(Columns))
	for i, col := range Columns {
		switch {
		case i == 0:
			defs = append(defs, col+" BIGINT PRIMARY KEY")
		case i < numericFrom:
			defs = append(defs, col+" TEXT")
		default:
			defs = append(defs, col+" DOUBLE PRECISION")
		}
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", table, strings.Join(defs, ",\n\t")), nil
}

// ScanRows reads catalog rows selected with Columns. Rows with a NULL
// identifier are skipped and counted.
func ScanRows(rows *sql.Rows) (records []partscope.Record, skipped int, err error) {
	for rows.Next() {
		var (
			did  sql.NullInt64
			text [numericFrom - 1]sql.NullString
			nums [10]sql.NullFloat64
		)
		dest := make([]any, 0, len(Columns))
		dest = append(dest, &did)
		for i := range text {
			dest = append(dest, &text[i])
		}
		for i := range nums {
			dest = append(dest, &nums[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, partscope.Wrap(partscope.ErrSQL, "scan catalog row", err)
		}
		if !did.Valid {
			skipped++
			continue
		}
		r := partscope.Record{
			ID:                      partscope.RecordID(did.Int64),
			FileName:                text[0].String,
			Manufacturer:            text[1].String,
			PartNumber:              text[2].String,
			Package:                 text[3].String,
			PackageManufacturerName: text[4].String,
			MountingType:            text[5].String,
			ChannelType:             text[6].String,
			Configuration:           text[7].String,
			Material:                text[8].String,
			PartStatus:              text[9].String,
			IndustryPackageCategory: text[10].String,
			ProductPackageCategory:  text[11].String,
			Automotive:              text[12].String,
			GateVoltage:             nullFloat(nums[1]),
			ThresholdVoltage:        nullFloat(nums[2]),
			ThermalResistance:       nullFloat(nums[3]),
			Capacitance:             nullFloat(nums[4]),
			TypicalOnResistance:     nullFloat(nums[9]),
		}
		if nums[0].Valid {
			r.BreakdownVoltage = nums[0].Float64
		}
		for i := 0; i < partscope.OnResistanceConditions; i++ {
			r.OnResistance[i] = nullFloat(nums[5+i])
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, partscope.Wrap(partscope.ErrSQL, "iterate catalog rows", err)
	}
	return records, skipped, nil
}

// LoadTable runs SelectSQL against db and scans the result.
func LoadTable(ctx context.Context, db *sql.DB, table string) ([]partscope.Record, int, error) {
	query, err := SelectSQL(table)
	if err != nil {
		return nil, 0, err
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, 0, partscope.Wrap(partscope.ErrSQL, "query catalog", err)
	}
	defer rows.Close()
	return ScanRows(rows)
}

// WriteRecords replaces the contents of table with records in one transaction,
// creating the table if needed.
func WriteRecords(ctx context.Context, db *sql.DB, style sqlbuilder.PlaceholderStyle, table string, records []partscope.Record) error {
	ddl, err := CreateTableSQL(table)
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return partscope.Wrap(partscope.ErrSQL, "create catalog table", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return partscope.Wrap(partscope.ErrSQL, "begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return partscope.Wrap(partscope.ErrSQL, "clear catalog table", err)
	}
	cols := strings.Join(Columns, ", ")
	for i := range records {
		b := sqlbuilder.New(style)
		values := b.List(rowValues(&records[i])...)
		stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, cols, values)
		if _, err := tx.ExecContext(ctx, stmt, b.Args()...); err != nil {
			return partscope.Wrap(partscope.ErrSQL, fmt.Sprintf("insert record %d", records[i].ID), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return partscope.Wrap(partscope.ErrSQL, "commit", err)
	}
	return nil
}

func rowValues(r *partscope.Record) []any {
	return []any{
		int64(r.ID),
		nullString(r.FileName),
		nullString(r.Manufacturer),
		nullString(r.PartNumber),
		nullString(r.Package),
		nullString(r.PackageManufacturerName),
		nullString(r.MountingType),
		nullString(r.ChannelType),
		nullString(r.Configuration),
		nullString(r.Material),
		nullString(r.PartStatus),
		nullString(r.IndustryPackageCategory),
		nullString(r.ProductPackageCategory),
		nullString(r.Automotive),
		r.BreakdownVoltage,
		floatArg(r.GateVoltage),
		floatArg(r.ThresholdVoltage),
		floatArg(r.ThermalResistance),
		floatArg(r.Capacitance),
		floatArg(r.OnResistance[0]),
		floatArg(r.OnResistance[1]),
		floatArg(r.OnResistance[2]),
		floatArg(r.OnResistance[3]),
		floatArg(r.TypicalOnResistance),
	}
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func floatArg(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
