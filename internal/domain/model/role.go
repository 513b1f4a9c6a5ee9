package model

type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleKitchen  UserRole = "KITCHEN"
	RoleManager  UserRole = "MANAGER"
	RoleAdmin    UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleKitchen, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// CUSTOMER以外はスタッフ扱い（注文一覧・メニュー管理が見える）
func (r UserRole) IsStaff() bool {
	return r.Valid() && r != RoleCustomer
}
