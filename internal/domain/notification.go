package domain

type NotificationMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type AssignmentRescheduledData struct {
	StaffName string `json:"staffName"`
	ShiftName string `json:"shiftName"`
	NewDate   string `json:"newDate"`
}

type ScheduleSavedData struct {
	ScheduleID      string `json:"scheduleId"`
	AssignmentCount int    `json:"assignmentCount"`
	UpdatedCount    int    `json:"updatedCount"`
}
