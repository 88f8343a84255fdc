package constants

// NSQ topics consumed by the outbound notification workers.
const (
	TopicNotifyEmail  = "notify.email"
	TopicNotifyMobile = "notify.mobile"
)
