package logging

// Field names shared by all components so log output can be filtered consistently.
const (
	FieldComponent = "component"
	FieldFile      = "file_path"
	FieldOperation = "operation"
	FieldCount     = "count"
	FieldSkipped   = "skipped"
	FieldLine      = "line"
	FieldReason    = "reason"
	FieldMonth     = "month"
	FieldCurrency  = "currency"
	FieldTotalKWh  = "total_kwh"
	FieldDeltaKWh  = "delta_kwh"
	FieldBudget    = "budget_status"
	FieldForecast  = "forecast"
	FieldDelimiter = "delimiter"
)
