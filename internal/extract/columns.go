package extract

// Column names of the objectives export schema.
const (
	colOwner      = "Owner"
	colOwnerEmail = "Owner Email"
	colTeams      = "Teams"
	colTitle      = "Title"
	colParent     = "Parent Objective Title"
	colState      = "State"
	colStartDate  = "Start Date"
	colDueDate    = "Due Date"
	colProgress   = "Progress %"
	colStatus     = "Status"
)
