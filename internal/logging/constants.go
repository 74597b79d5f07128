package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile        = "file_path"
	FieldCategory    = "category"
	FieldConfidence  = "confidence"
	FieldStage       = "stage"
	FieldStrategy    = "strategy"
	FieldOperation   = "operation"
	FieldStatus      = "status"
	FieldError       = "error"
	FieldCount       = "count"
	FieldReportID    = "report_id"
	FieldDescription = "description"
	FieldAmount      = "amount"
	FieldInputFile   = "input_file"
	FieldOutputFile  = "output_file"
)
