package boss

type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by boss.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "boss context key: " + string(k)
}
