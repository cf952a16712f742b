// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic     SecurityLevel = iota // No caller identity
	SecurityIdentified                      // X-Sharer-User-Id or bearer token required
)

// EndpointSecurityConfig maps route names to their required security level.
// Route names are set on the router; unknown routes default to identified.
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Users - Public
	"users.create": SecurityPublic,
	"users.get":    SecurityPublic,
	"users.update": SecurityPublic,
	"users.delete": SecurityPublic,

	// Items - Public
	"items.search": SecurityPublic,

	// Items - Identified
	"items.create":  SecurityIdentified,
	"items.get":     SecurityIdentified,
	"items.update":  SecurityIdentified,
	"items.delete":  SecurityIdentified,
	"items.list":    SecurityIdentified,
	"items.comment": SecurityIdentified,

	// Bookings - Identified
	"bookings.create":     SecurityIdentified,
	"bookings.get":        SecurityIdentified,
	"bookings.approve":    SecurityIdentified,
	"bookings.list":       SecurityIdentified,
	"bookings.list_owner": SecurityIdentified,

	// Requests - Identified
	"requests.create":     SecurityIdentified,
	"requests.list_own":   SecurityIdentified,
	"requests.list_other": SecurityIdentified,
	"requests.get":        SecurityIdentified,
}

// GetSecurityLevel returns the security level of a named route.
func GetSecurityLevel(name string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[name]; ok {
		return level
	}
	return SecurityIdentified
}
