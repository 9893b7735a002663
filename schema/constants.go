package schema

// RequiredColumns are the columns every combined qualifying table must carry.
// The seconds columns are derived during ingest, so by the time the check
// runs they must be present as well; a missing column is a configuration
// error, not missing data.
var RequiredColumns = []string{
	"DriverNumber", "BroadcastName", "TeamName", "Position",
	"Q1", "Q2", "Q3", "Year", "EventName", "WetSession",
	"Q1Seconds", "Q2Seconds", "Q3Seconds",
}

// Default input/output locations for the pipeline.
const (
	DefaultInputDir       = "data"
	DefaultOutputDir      = "data"
	DefaultOutputFileName = "career_timeline.json"
)

// DatabaseBackend identifies the run-tracking storage backend.
type DatabaseBackend string

// Supported run-tracking backends.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgres"
	NoneBackend       DatabaseBackend = "none"
)
