package domain

// AccountKind differentiates admin vs customer tokens sharing the login endpoint.
type AccountKind string

const (
	AccountKindAdmin    AccountKind = "admin"
	AccountKindCustomer AccountKind = "customer"
)

// LoginOutcome tags the result of the dual-table login probe.
type LoginOutcome string

const (
	LoginOutcomeAdminMatch       LoginOutcome = "ADMIN_MATCH"
	LoginOutcomeCustomerMatch    LoginOutcome = "CUSTOMER_MATCH"
	LoginOutcomeCustomerDisabled LoginOutcome = "CUSTOMER_DISABLED"
	LoginOutcomeNoMatch          LoginOutcome = "NO_MATCH"
)

// Redirect targets handed to the client after a successful login.
const (
	AdminHomePath    = "/admin/dashboard"
	CustomerHomePath = "/portal"
)
