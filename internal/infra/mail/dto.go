package mail

type FollowUpEmailData struct {
	TelecallerName string
	LeadName       string
	Phone          string
	RequestedAt    string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
