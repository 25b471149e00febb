package models

// Consumption categories, in the order they are entered and charted.
const (
	CategoryAirConditioning = "Air conditioning"
	CategoryLighting        = "Lighting"
	CategoryOther           = "Other devices"
)

// File permissions
const (
	PermissionLogFile   = 0600
	PermissionDirectory = 0750
)

// HistoryColumns is the number of columns of a well-formed history log row.
const HistoryColumns = 6
