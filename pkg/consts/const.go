package consts

const (
	APIEndpoint = "https://api.namecheap.com/xml.response"
	APICommand  = "namecheap.domains.getList"

	ListTypeAll      = "ALL"
	ListTypeExpiring = "EXPIRING"
	ListTypeExpired  = "EXPIRED"

	PageNumber = "1"
	PageSize   = "100"
	SortBy     = "EXPIREDATE"

	StatusOK          = "OK"
	WhoisGuardEnabled = "ENABLED"

	EnvAPIKey   = "NAMECHEAP_API_KEY"
	EnvAPIUser  = "NAMECHEAP_USERNAME"
	EnvClientIP = "CLIENT_IP"

	ResponseDumpFile = "api_response.xml"

	RenewSoonDays = 30
	UpcomingDays  = 90
)
