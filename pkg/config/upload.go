package config

type UploadRule struct {
	AllowedMimeTypes []string
	MaxSizeMB        int64
	PathPrefix       string
}

const UploadTicketPhoto = "ticket_photo"

var UploadContexts = map[string]UploadRule{
	UploadTicketPhoto: {
		AllowedMimeTypes: []string{"image/jpeg", "image/png", "image/gif", "image/webp"},
		MaxSizeMB:        10,
		PathPrefix:       "tickets",
	},
}
