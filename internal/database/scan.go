package database

import (
	"database/sql"
	"time"
)

// Scan helpers converting the sql.Null* types the repositories scan into
// the pointer fields the entities serialize.

func Str(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func IntP(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

func FloatP(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	return &nf.Float64
}

func BoolP(nb sql.NullBool) *bool {
	if !nb.Valid {
		return nil
	}
	return &nb.Bool
}

func TimeP(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	return &nt.Time
}
