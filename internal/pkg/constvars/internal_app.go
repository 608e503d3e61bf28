package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "MSFK_SVC_"
)

const (
	CurrencyUSDollar = "usd"
)

const (
	ReaperLeaderLockKey     = "reaper:leader"
	BookingLockKeyFormat    = "booking:doctor:%d"
	NotificationPushQueue   = "mosefak.notifications.push"
	MongoCollectionNotifications = "notifications"
)
