package types

type Role = string

var (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleTeller     Role = "teller"
)

type UserState = string

var (
	UserStateActive UserState = "active"
	UserStateLocked UserState = "locked"
)
