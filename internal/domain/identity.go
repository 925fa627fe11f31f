package domain

// UserAndService is the identity resolved for a single request.
// It is built by the auth resolver and never persisted.
type UserAndService struct {
	UserID  string
	Service string
	Secrets *Secrets
}

// WithSecrets returns a copy carrying the parsed secret header.
func (u UserAndService) WithSecrets(s Secrets) UserAndService {
	u.Secrets = &s
	return u
}

// Key builds the ownership key for the given document type.
func (u UserAndService) Key(docType string) Key {
	return Key{UserID: u.UserID, Service: u.Service, Type: docType}
}

// Secrets holds the values of the shared-secret header ("primary[,secondary]").
type Secrets struct {
	Primary   string
	Secondary string
}
