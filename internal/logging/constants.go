package logging

// Field names shared by all log entries so that json logs stay greppable.
const (
	FieldFile      = "file_path"
	FieldStore     = "store"
	FieldOperation = "operation"
	FieldCategory  = "category"
	FieldExpense   = "expense"
	FieldDate      = "date"
	FieldCost      = "cost"
	FieldCount     = "count"
	FieldFormat    = "format"
	FieldDelimiter = "delimiter"
	FieldChoice    = "choice"
	FieldCommand   = "command"
	FieldError     = "error"
)
