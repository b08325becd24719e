package constant

// ContextKey is the type used for values stored on a request context.
type ContextKey string

// AuthUserKey carries the authenticated user entity resolved by the auth middleware.
const AuthUserKey ContextKey = "auth_user"

// Account roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// Business classifications accepted at registration.
const (
	BusinessTypeImporter     = "importer"
	BusinessTypeDistributor  = "distributor"
	BusinessTypeRetailer     = "retailer"
	BusinessTypeManufacturer = "manufacturer"
	BusinessTypeOther        = "other"
)
