package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks registers GORM callbacks for query metrics collection
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	// Query callbacks
	db.Callback().Query().Before("gorm:query").Register("metrics:select_before", func(db *gorm.DB) {
		db.InstanceSet("query_start_time", time.Now())
	})
	db.Callback().Query().After("gorm:query").Register("metrics:select_after", func(db *gorm.DB) {
		if startTime, ok := db.InstanceGet("query_start_time"); ok {
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery("select", table, time.Since(startTime.(time.Time)), db.Error)
		}
	})

	// Create callbacks
	db.Callback().Create().Before("gorm:create").Register("metrics:insert_before", func(db *gorm.DB) {
		db.InstanceSet("query_start_time", time.Now())
	})
	db.Callback().Create().After("gorm:create").Register("metrics:insert_after", func(db *gorm.DB) {
		if startTime, ok := db.InstanceGet("query_start_time"); ok {
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery("insert", table, time.Since(startTime.(time.Time)), db.Error)
		}
	})

	// Update callbacks
	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", func(db *gorm.DB) {
		db.InstanceSet("query_start_time", time.Now())
	})
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", func(db *gorm.DB) {
		if startTime, ok := db.InstanceGet("query_start_time"); ok {
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery("update", table, time.Since(startTime.(time.Time)), db.Error)
		}
	})

	// Delete callbacks
	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", func(db *gorm.DB) {
		db.InstanceSet("query_start_time", time.Now())
	})
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", func(db *gorm.DB) {
		if startTime, ok := db.InstanceGet("query_start_time"); ok {
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery("delete", table, time.Since(startTime.(time.Time)), db.Error)
		}
	})
}

// StartDBStatsCollector starts periodic connection pool stats collection.
// Close the returned channel to stop the collector.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
