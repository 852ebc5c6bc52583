package handler

// DI for both pipelines.

import (
	mydb "github.com/yumyai/bgctable/pkg/db"
)

type RunContext struct {
	Summary_DB *mydb.SummaryDB // nil when no SQLite export was asked for
}
