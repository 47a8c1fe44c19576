package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type NewAccountMailData struct {
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"full_name"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type SchedulePublishedShift struct {
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	TotalHour float64 `json:"total_hour"`
}

type SchedulePublishedMailData struct {
	PreferredName    string                   `json:"preferred_name"`
	WeekLabel        string                   `json:"week_label"`
	Shifts           []SchedulePublishedShift `json:"shifts"`
	WeeklyTotalHours float64                  `json:"weekly_total_hours"`
}
