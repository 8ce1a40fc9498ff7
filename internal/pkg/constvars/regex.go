package constvars

const (
	RegexAlphanumeric = `^[a-zA-Z0-9]+$`
	RegexPhoneDigits  = `^\+?[0-9]{6,15}$`
)
