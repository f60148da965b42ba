package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldNamespace = "namespace"
	FieldRecordID  = "record_id"
	FieldCount     = "count"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldSource    = "source"
	FieldCard      = "card"
	FieldAccount   = "account"
	FieldBackend   = "backend"
	FieldPath      = "path"
)

// Standard component names.
const (
	ComponentApp        = "app"
	ComponentExpenses   = "expenses"
	ComponentIncome     = "income"
	ComponentStatements = "statements"
	ComponentPortfolio  = "portfolio"
	ComponentStorage    = "storage"
	ComponentBackend    = "backend"
	ComponentCLI        = "cli"
)

// Standard operation names.
const (
	OpCreate  = "create"
	OpDelete  = "delete"
	OpUpdate  = "update"
	OpLoad    = "load"
	OpPersist = "persist"
	OpStartup = "startup"
)
