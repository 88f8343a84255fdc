package constants

// Capabilities understood by the authorization engine. The CRUD
// surfaces of the HR platform gate their privileged endpoints on these.
const (
	CapRolesManage          = "roles.manage"
	CapUsersView            = "users.view"
	CapUsersManage          = "users.manage"
	CapAttendanceView       = "attendance.view"
	CapAttendanceManage     = "attendance.manage"
	CapLeaveApprove         = "leave.approve"
	CapAnnouncementsPublish = "announcements.publish"
	CapTasksAssign          = "tasks.assign"
)
