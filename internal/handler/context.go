package handler

type ContextKey string

var (
	RoleCtxKey      ContextKey = "role"
	SubCtxKey       ContextKey = "sub"
	MyInfoCtx       ContextKey = "myInfo"
	UserInfoCtx     ContextKey = "userInfo"
	EmployeeInfoCtx ContextKey = "employeeInfo"
	ScheduleCtx     ContextKey = "schedule"
)
